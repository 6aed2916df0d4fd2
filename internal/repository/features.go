package repository

import (
	"context"
	"fmt"

	"sportspredictor/precompute/internal/models"

	"github.com/rs/zerolog/log"
)

// FeatureRepository persists the latest feature snapshot tables. Each run
// wholly replaces the prior snapshot inside a transaction, never merges.
type FeatureRepository struct {
	db *Database
}

// ReplaceMLB atomically swaps the baseball snapshot table for the given rows
func (r *FeatureRepository) ReplaceMLB(ctx context.Context, features []*models.MLBTeamFeatures) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM mlb_team_features`); err != nil {
		return fmt.Errorf("failed to clear mlb_team_features: %w", err)
	}

	query := `
		INSERT INTO mlb_team_features (
			team_code,
			rolling_avg_adj_hits_home_perf, rolling_avg_adj_homers_home_perf,
			rolling_avg_adj_walks_home_perf, rolling_avg_adj_strikeouts_home_perf,
			rolling_avg_adj_hits_away_perf, rolling_avg_adj_homers_away_perf,
			rolling_avg_adj_walks_away_perf, rolling_avg_adj_strikeouts_away_perf,
			computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	for _, f := range features {
		_, err := tx.Exec(ctx, query,
			f.TeamCode,
			f.RollingAdjHitsHome, f.RollingAdjHomersHome,
			f.RollingAdjWalksHome, f.RollingAdjStrikeoutsHome,
			f.RollingAdjHitsAway, f.RollingAdjHomersAway,
			f.RollingAdjWalksAway, f.RollingAdjStrikeoutsAway,
		)
		if err != nil {
			return fmt.Errorf("failed to insert mlb features for %s: %w", f.TeamCode, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit mlb snapshot: %w", err)
	}

	log.Info().Int("teams", len(features)).Msg("MLB feature snapshot replaced")
	return nil
}

// ReplaceNFL atomically swaps the football snapshot table for the given rows
func (r *FeatureRepository) ReplaceNFL(ctx context.Context, features []*models.NFLTeamFeatures) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM nfl_team_features`); err != nil {
		return fmt.Errorf("failed to clear nfl_team_features: %w", err)
	}

	query := `
		INSERT INTO nfl_team_features (
			team_code,
			rolling_avg_adj_pts_scored_home, rolling_avg_adj_pts_allowed_home,
			rolling_avg_adj_pts_scored_away, rolling_avg_adj_pts_allowed_away,
			computed_at
		) VALUES ($1, $2, $3, $4, $5, NOW())
	`

	for _, f := range features {
		_, err := tx.Exec(ctx, query,
			f.TeamCode,
			f.RollingAdjPtsScoredHome, f.RollingAdjPtsAllowedHome,
			f.RollingAdjPtsScoredAway, f.RollingAdjPtsAllowedAway,
		)
		if err != nil {
			return fmt.Errorf("failed to insert nfl features for %s: %w", f.TeamCode, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit nfl snapshot: %w", err)
	}

	log.Info().Int("teams", len(features)).Msg("NFL feature snapshot replaced")
	return nil
}

// ListMLB retrieves the current baseball snapshot, ordered by team code
func (r *FeatureRepository) ListMLB(ctx context.Context) ([]*models.MLBTeamFeatures, error) {
	query := `
		SELECT id, team_code,
		       rolling_avg_adj_hits_home_perf, rolling_avg_adj_homers_home_perf,
		       rolling_avg_adj_walks_home_perf, rolling_avg_adj_strikeouts_home_perf,
		       rolling_avg_adj_hits_away_perf, rolling_avg_adj_homers_away_perf,
		       rolling_avg_adj_walks_away_perf, rolling_avg_adj_strikeouts_away_perf,
		       computed_at
		FROM mlb_team_features
		ORDER BY team_code
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mlb features: %w", err)
	}
	defer rows.Close()

	var features []*models.MLBTeamFeatures
	for rows.Next() {
		var f models.MLBTeamFeatures
		err := rows.Scan(
			&f.ID, &f.TeamCode,
			&f.RollingAdjHitsHome, &f.RollingAdjHomersHome,
			&f.RollingAdjWalksHome, &f.RollingAdjStrikeoutsHome,
			&f.RollingAdjHitsAway, &f.RollingAdjHomersAway,
			&f.RollingAdjWalksAway, &f.RollingAdjStrikeoutsAway,
			&f.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mlb features: %w", err)
		}
		features = append(features, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mlb features: %w", err)
	}

	return features, nil
}

// ListNFL retrieves the current football snapshot, ordered by team code
func (r *FeatureRepository) ListNFL(ctx context.Context) ([]*models.NFLTeamFeatures, error) {
	query := `
		SELECT id, team_code,
		       rolling_avg_adj_pts_scored_home, rolling_avg_adj_pts_allowed_home,
		       rolling_avg_adj_pts_scored_away, rolling_avg_adj_pts_allowed_away,
		       computed_at
		FROM nfl_team_features
		ORDER BY team_code
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfl features: %w", err)
	}
	defer rows.Close()

	var features []*models.NFLTeamFeatures
	for rows.Next() {
		var f models.NFLTeamFeatures
		err := rows.Scan(
			&f.ID, &f.TeamCode,
			&f.RollingAdjPtsScoredHome, &f.RollingAdjPtsAllowedHome,
			&f.RollingAdjPtsScoredAway, &f.RollingAdjPtsAllowedAway,
			&f.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nfl features: %w", err)
		}
		features = append(features, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nfl features: %w", err)
	}

	return features, nil
}
