package repository

import (
	"context"
	"fmt"

	"sportspredictor/precompute/internal/models"

	"github.com/rs/zerolog/log"
)

// GameRepository reads the ingested game tables the pipeline consumes.
// MLB and NFL games live in separate tables, mirroring the ingestion layer.
type GameRepository struct {
	db *Database
}

const gameColumns = `id, game_id, commence_time, home_team, away_team, home_score, away_score, created_at, updated_at`

// ListMLB retrieves all baseball games, ordered by commence time with the
// game identifier as the deterministic secondary key.
func (r *GameRepository) ListMLB(ctx context.Context) ([]*models.Game, error) {
	return r.list(ctx, "games")
}

// ListNFL retrieves all football games in the same order
func (r *GameRepository) ListNFL(ctx context.Context) ([]*models.Game, error) {
	return r.list(ctx, "nfl_games")
}

func (r *GameRepository) list(ctx context.Context, table string) ([]*models.Game, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY commence_time, game_id
	`, gameColumns, table)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games from %s: %w", table, err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var game models.Game
		err := rows.Scan(
			&game.ID, &game.GameID, &game.CommenceTime, &game.HomeTeam, &game.AwayTeam,
			&game.HomeScore, &game.AwayScore, &game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	log.Debug().Str("table", table).Int("count", len(games)).Msg("Retrieved games")
	return games, nil
}

// CountCompleted returns how many games in the table have both final scores.
// The scheduler polls this to detect newly completed games between runs.
func (r *GameRepository) CountCompleted(ctx context.Context, sport models.Sport) (int, error) {
	table := "games"
	if sport == models.SportNFL {
		table = "nfl_games"
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE home_score IS NOT NULL AND away_score IS NOT NULL
	`, table)

	var count int
	if err := r.db.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed games in %s: %w", table, err)
	}

	return count, nil
}
