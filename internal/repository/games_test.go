//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"sportspredictor/precompute/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertGame(t *testing.T, db *Database, ctx context.Context, table, gameID string, commence time.Time, home, away string, homeScore, awayScore *int) {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO `+table+` (game_id, commence_time, home_team, away_team, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, gameID, commence, home, away, homeScore, awayScore)
	require.NoError(t, err, "Failed to insert game %s", gameID)
}

func intPtr(v int) *int { return &v }

func TestGameRepository_ListMLB(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)
	truncate(t, db, ctx, "games")

	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	// Insert out of order; listing must sort by commence time then game id
	insertGame(t, db, ctx, "games", "g3", base.Add(48*time.Hour), "Yankees", "Red Sox", intPtr(1), intPtr(0))
	insertGame(t, db, ctx, "games", "g1", base, "Yankees", "Red Sox", intPtr(5), intPtr(3))
	insertGame(t, db, ctx, "games", "g2", base, "Red Sox", "Yankees", nil, nil)

	games, err := db.Games.ListMLB(ctx)
	require.NoError(t, err, "Should list games")
	require.Len(t, games, 3)

	assert.Equal(t, "g1", games[0].GameID, "Same commence time: game id breaks the tie")
	assert.Equal(t, "g2", games[1].GameID)
	assert.Equal(t, "g3", games[2].GameID)

	assert.True(t, games[0].IsComplete())
	assert.False(t, games[1].IsComplete(), "Missing scores should scan as invalid")
}

func TestGameRepository_CountCompleted(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)
	truncate(t, db, ctx, "games", "nfl_games")

	base := time.Date(2025, 9, 7, 18, 0, 0, 0, time.UTC)
	insertGame(t, db, ctx, "games", "m1", base, "Yankees", "Red Sox", intPtr(5), intPtr(3))
	insertGame(t, db, ctx, "games", "m2", base.Add(time.Hour), "Red Sox", "Yankees", nil, nil)
	insertGame(t, db, ctx, "nfl_games", "f1", base, "KC", "BUF", intPtr(30), intPtr(20))
	insertGame(t, db, ctx, "nfl_games", "f2", base.Add(time.Hour), "BUF", "KC", intPtr(24), intPtr(27))

	mlbCount, err := db.Games.CountCompleted(ctx, models.SportMLB)
	require.NoError(t, err)
	assert.Equal(t, 1, mlbCount, "Only games with both scores count")

	nflCount, err := db.Games.CountCompleted(ctx, models.SportNFL)
	require.NoError(t, err)
	assert.Equal(t, 2, nflCount)
}

func TestGameRepository_ListEmpty(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)
	truncate(t, db, ctx, "nfl_games")

	games, err := db.Games.ListNFL(ctx)
	require.NoError(t, err, "Empty table should not error")
	assert.Empty(t, games)
}
