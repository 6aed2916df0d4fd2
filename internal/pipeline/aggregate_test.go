package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatePerGame_SumsPerTeamGame(t *testing.T) {
	when := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	records := []AdjustedRecord{
		{GameID: "g1", Team: "NYY", HomeTeam: "NYY", CommenceTime: when, Stats: []float64{1, 0}},
		{GameID: "g1", Team: "NYY", HomeTeam: "NYY", CommenceTime: when, Stats: []float64{2, 3}},
		{GameID: "g1", Team: "BOS", HomeTeam: "NYY", CommenceTime: when, Stats: []float64{4, 1}},
	}

	out := AggregatePerGame(records, 2)
	require.Len(t, out, 2, "One row per (game, team)")

	byTeam := make(map[string]TeamGameVector)
	for _, row := range out {
		byTeam[row.Team] = row
	}

	assert.Equal(t, []float64{3, 3}, byTeam["NYY"].Stats, "Stats should sum across a team's records")
	assert.Equal(t, []float64{4, 1}, byTeam["BOS"].Stats)
	assert.Equal(t, LocationHome, byTeam["NYY"].Location)
	assert.Equal(t, LocationAway, byTeam["BOS"].Location)
}

func TestAggregatePerGame_Ordering(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	records := []AdjustedRecord{
		{GameID: "g9", Team: "TB", HomeTeam: "TB", CommenceTime: t2, Stats: []float64{1}},
		{GameID: "g2", Team: "BOS", HomeTeam: "BOS", CommenceTime: t1, Stats: []float64{1}},
		// Same commence time as g2: game id breaks the tie
		{GameID: "g1", Team: "NYY", HomeTeam: "NYY", CommenceTime: t1, Stats: []float64{1}},
	}

	out := AggregatePerGame(records, 1)
	require.Len(t, out, 3)

	assert.Equal(t, "g1", out[0].GameID, "Earliest time, lowest game id first")
	assert.Equal(t, "g2", out[1].GameID)
	assert.Equal(t, "g9", out[2].GameID)
}

func TestAggregatePerGame_Empty(t *testing.T) {
	out := AggregatePerGame(nil, 4)
	assert.Empty(t, out, "No records should produce no rows")
}
