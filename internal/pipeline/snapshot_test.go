package pipeline

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVec(values ...float64) FeatureVector {
	vec := make(FeatureVector, len(values))
	for i, v := range values {
		vec[i] = sql.NullFloat64{Float64: v, Valid: true}
	}
	return vec
}

func TestAssembleSnapshot_FullOuterJoin(t *testing.T) {
	home := map[string]FeatureVector{
		"NYY": validVec(1, 2),
		"BOS": validVec(3, 4),
	}
	away := map[string]FeatureVector{
		"NYY": validVec(5, 6),
		"TB":  validVec(7, 8),
	}

	rows := AssembleSnapshot(home, away, 2)
	require.Len(t, rows, 3, "Union of home and away teams")

	byTeam := make(map[string]SnapshotRow)
	for _, row := range rows {
		byTeam[row.Team] = row
	}

	// Both sides present
	assert.Equal(t, validVec(1, 2), byTeam["NYY"].Home)
	assert.Equal(t, validVec(5, 6), byTeam["NYY"].Away)

	// Home-only team keeps its row; away columns stay unset
	require.Len(t, byTeam["BOS"].Away, 2)
	assert.False(t, byTeam["BOS"].Away[0].Valid)
	assert.False(t, byTeam["BOS"].Away[1].Valid)

	// Away-only team likewise
	require.Len(t, byTeam["TB"].Home, 2)
	assert.False(t, byTeam["TB"].Home[0].Valid)
	assert.Equal(t, validVec(7, 8), byTeam["TB"].Away)
}

func TestAssembleSnapshot_OrderedByTeamCode(t *testing.T) {
	home := map[string]FeatureVector{"TB": validVec(1), "BOS": validVec(2), "NYY": validVec(3)}

	rows := AssembleSnapshot(home, nil, 1)
	require.Len(t, rows, 3)
	assert.Equal(t, "BOS", rows[0].Team)
	assert.Equal(t, "NYY", rows[1].Team)
	assert.Equal(t, "TB", rows[2].Team)
}

func TestAssembleSnapshot_Deterministic(t *testing.T) {
	home := map[string]FeatureVector{"NYY": validVec(1), "BOS": validVec(2)}
	away := map[string]FeatureVector{"TB": validVec(3)}

	first := AssembleSnapshot(home, away, 1)
	second := AssembleSnapshot(home, away, 1)
	assert.Equal(t, first, second, "Identical input should produce identical output")
}

func TestAssembleSnapshot_Empty(t *testing.T) {
	rows := AssembleSnapshot(nil, nil, 4)
	assert.Empty(t, rows)
}
