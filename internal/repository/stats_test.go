//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertBatterLine(t *testing.T, db *Database, ctx context.Context, gameID, team, player string, hits *int) {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO batter_stats (game_id, team, player_name, at_bats, hits, home_runs, walks, strikeouts)
		VALUES ($1, $2, $3, 4, $4, 0, 1, 1)
	`, gameID, team, player, hits)
	require.NoError(t, err, "Failed to insert batter line")
}

func TestStatsRepository_ListBatterStats(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)
	truncate(t, db, ctx, "batter_stats")

	insertBatterLine(t, db, ctx, "g2", "BOS", "Batter One", intPtr(2))
	insertBatterLine(t, db, ctx, "g1", "NYY", "Batter Two", intPtr(1))
	insertBatterLine(t, db, ctx, "g1", "NYY", "Batter Three", nil)

	lines, err := db.Stats.ListBatterStats(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "g1", lines[0].GameID, "Lines ordered by game id then insertion")
	assert.Equal(t, "g1", lines[1].GameID)
	assert.Equal(t, "g2", lines[2].GameID)

	// NULL stat columns scan as invalid and zero-fill downstream
	assert.False(t, lines[1].Hits.Valid)
	assert.Zero(t, lines[1].HitsOrZero())
	assert.Equal(t, 1.0, lines[0].HitsOrZero())
}

func TestStatsRepository_ListPitcherStats(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)
	truncate(t, db, ctx, "pitcher_stats")

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO pitcher_stats (game_id, team, player_name, innings_pitched, earned_runs, strikeouts, walks_allowed, hits_allowed)
		VALUES ('g1', 'NYY', 'Pitcher One', 9, 2, 8, 1, 5)
	`)
	require.NoError(t, err)

	lines, err := db.Stats.ListPitcherStats(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "NYY", lines[0].Team)
	assert.Equal(t, 9.0, lines[0].InningsPitchedOrZero())
	assert.Equal(t, 2.0, lines[0].EarnedRunsOrZero())
}
