package repository

import (
	"context"
	"fmt"

	"sportspredictor/precompute/internal/models"

	"github.com/rs/zerolog/log"
)

// StatsRepository reads the player stat tables the baseball pipeline consumes
type StatsRepository struct {
	db *Database
}

// ListBatterStats retrieves all batter stat lines as a full table scan
func (r *StatsRepository) ListBatterStats(ctx context.Context) ([]*models.BatterStatLine, error) {
	query := `
		SELECT id, game_id, team, player_name,
		       at_bats, hits, home_runs, walks, strikeouts,
		       created_at
		FROM batter_stats
		ORDER BY game_id, id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list batter stats: %w", err)
	}
	defer rows.Close()

	var lines []*models.BatterStatLine
	for rows.Next() {
		var line models.BatterStatLine
		err := rows.Scan(
			&line.ID, &line.GameID, &line.Team, &line.PlayerName,
			&line.AtBats, &line.Hits, &line.HomeRuns, &line.Walks, &line.Strikeouts,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batter stat line: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating batter stats: %w", err)
	}

	log.Debug().Int("count", len(lines)).Msg("Retrieved batter stats")
	return lines, nil
}

// ListPitcherStats retrieves all pitcher stat lines as a full table scan
func (r *StatsRepository) ListPitcherStats(ctx context.Context) ([]*models.PitcherStatLine, error) {
	query := `
		SELECT id, game_id, team, player_name,
		       innings_pitched, earned_runs, strikeouts, walks_allowed, hits_allowed,
		       created_at
		FROM pitcher_stats
		ORDER BY game_id, id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pitcher stats: %w", err)
	}
	defer rows.Close()

	var lines []*models.PitcherStatLine
	for rows.Next() {
		var line models.PitcherStatLine
		err := rows.Scan(
			&line.ID, &line.GameID, &line.Team, &line.PlayerName,
			&line.InningsPitched, &line.EarnedRuns, &line.Strikeouts, &line.WalksAllowed, &line.HitsAllowed,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pitcher stat line: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pitcher stats: %w", err)
	}

	log.Debug().Int("count", len(lines)).Msg("Retrieved pitcher stats")
	return lines, nil
}
