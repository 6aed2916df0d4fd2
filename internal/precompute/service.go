// Package precompute orchestrates the feature pipeline runs: load the input
// tables, hand them to the pure pipeline core, and persist the resulting
// snapshot. Each sport runs in isolation; one sport's failure never aborts
// or corrupts the other's run.
package precompute

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sportspredictor/precompute/internal/cache"
	"sportspredictor/precompute/internal/config"
	"sportspredictor/precompute/internal/metrics"
	"sportspredictor/precompute/internal/models"
	"sportspredictor/precompute/internal/pipeline"
	"sportspredictor/precompute/internal/repository"
	"sportspredictor/precompute/internal/resolver"

	"github.com/rs/zerolog/log"
)

// Service runs the per-sport feature precomputation end to end
type Service struct {
	cfg   *config.Config
	db    *repository.Database
	cache *cache.RedisCache // optional; nil when Redis is unavailable
}

// NewService creates a precompute service
func NewService(cfg *config.Config, db *repository.Database, redisCache *cache.RedisCache) *Service {
	return &Service{
		cfg:   cfg,
		db:    db,
		cache: redisCache,
	}
}

// RunAll runs every sport's pipeline sequentially and returns the number of
// sports whose run succeeded. Failures are logged and counted, not
// propagated, so a broken sport cannot block the other.
func (s *Service) RunAll(ctx context.Context) int {
	succeeded := 0

	if err := s.RunMLB(ctx); err != nil {
		log.Error().Err(err).Msg("MLB feature precompute failed")
		metrics.RecordError("precompute", "mlb_run")
	} else {
		succeeded++
	}

	if err := s.RunNFL(ctx); err != nil {
		log.Error().Err(err).Msg("NFL feature precompute failed")
		metrics.RecordError("precompute", "nfl_run")
	} else {
		succeeded++
	}

	return succeeded
}

// RunMLB loads the baseball input tables, computes the feature snapshot, and
// replaces the persisted table. An error is returned only for precondition
// failures (unreadable input tables) or persistence failures; bad rows are
// skipped and counted inside the pipeline.
func (s *Service) RunMLB(ctx context.Context) error {
	start := time.Now()
	log.Info().Msg("Starting MLB feature precompute")

	gameRows, err := s.db.Games.ListMLB(ctx)
	if err != nil {
		metrics.RecordPipelineRun("mlb", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to load games: %w", err)
	}
	batterRows, err := s.db.Stats.ListBatterStats(ctx)
	if err != nil {
		metrics.RecordPipelineRun("mlb", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to load batter stats: %w", err)
	}
	pitcherRows, err := s.db.Stats.ListPitcherStats(ctx)
	if err != nil {
		metrics.RecordPipelineRun("mlb", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to load pitcher stats: %w", err)
	}

	result := pipeline.RunMLB(
		gamesToPipeline(gameRows),
		battersToPipeline(batterRows),
		pitchersToPipeline(pitcherRows),
		resolver.MLB(),
		pipelineSettings(s.cfg.MLB()),
	)

	features := mlbSnapshotToModels(result.Snapshot)
	if err := s.db.Features.ReplaceMLB(ctx, features); err != nil {
		metrics.RecordPipelineRun("mlb", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to persist mlb snapshot: %w", err)
	}

	s.cacheSnapshot(ctx, models.SportMLB, features)
	s.finishRun("mlb", result.Report, start)
	return nil
}

// RunNFL loads the football games table, computes the feature snapshot, and
// replaces the persisted table.
func (s *Service) RunNFL(ctx context.Context) error {
	start := time.Now()
	log.Info().Msg("Starting NFL feature precompute")

	gameRows, err := s.db.Games.ListNFL(ctx)
	if err != nil {
		metrics.RecordPipelineRun("nfl", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to load nfl games: %w", err)
	}

	result := pipeline.RunNFL(
		gamesToPipeline(gameRows),
		resolver.NFL(),
		pipelineSettings(s.cfg.NFL()),
	)

	features := nflSnapshotToModels(result.Snapshot)
	if err := s.db.Features.ReplaceNFL(ctx, features); err != nil {
		metrics.RecordPipelineRun("nfl", "failure", time.Since(start).Seconds())
		return fmt.Errorf("failed to persist nfl snapshot: %w", err)
	}

	s.cacheSnapshot(ctx, models.SportNFL, features)
	s.finishRun("nfl", result.Report, start)
	return nil
}

func (s *Service) cacheSnapshot(ctx context.Context, sport models.Sport, snapshot interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetSnapshot(ctx, sport, snapshot, s.cfg.SnapshotTTL()); err != nil {
		// Cache is an accelerator only; the table in Postgres is the source of truth
		log.Warn().Err(err).Str("sport", string(sport)).Msg("Failed to cache snapshot")
	}
}

func (s *Service) finishRun(sport string, report pipeline.Report, start time.Time) {
	duration := time.Since(start)
	metrics.RecordPipelineRun(sport, "success", duration.Seconds())
	metrics.RecordRunReport(sport, report.GamesUsed, report.SkippedIncomplete, report.DroppedUnresolved, report.SnapshotRows)

	log.Info().
		Str("sport", sport).
		Int("games_used", report.GamesUsed).
		Int("skipped_incomplete", report.SkippedIncomplete).
		Int("dropped_unresolved", report.DroppedUnresolved).
		Int("snapshot_rows", report.SnapshotRows).
		Dur("duration", duration).
		Msg("Feature precompute complete")

	if report.DroppedUnresolved > 0 {
		log.Warn().
			Str("sport", sport).
			Int("dropped_unresolved", report.DroppedUnresolved).
			Msg("Records dropped for unresolvable team names - check the resolution table")
	}
}

func pipelineSettings(sc config.SportConfig) pipeline.Settings {
	return pipeline.Settings{
		RollingWindow: sc.RollingWindow,
		RankCohort:    sc.RankCohort,
		Epsilon:       sc.Epsilon,
	}
}

// Input conversions: missing numeric fields become zero here, before the
// rows reach the pipeline.

func gamesToPipeline(rows []*models.Game) []pipeline.Game {
	games := make([]pipeline.Game, 0, len(rows))
	for _, g := range rows {
		pg := pipeline.Game{
			GameID:       g.GameID,
			CommenceTime: g.CommenceTime,
			HomeTeam:     g.HomeTeam,
			AwayTeam:     g.AwayTeam,
		}
		if g.HomeScore.Valid {
			pg.HomeScore = sql.NullFloat64{Float64: float64(g.HomeScore.Int32), Valid: true}
		}
		if g.AwayScore.Valid {
			pg.AwayScore = sql.NullFloat64{Float64: float64(g.AwayScore.Int32), Valid: true}
		}
		games = append(games, pg)
	}
	return games
}

func battersToPipeline(rows []*models.BatterStatLine) []pipeline.BatterLine {
	lines := make([]pipeline.BatterLine, 0, len(rows))
	for _, b := range rows {
		lines = append(lines, pipeline.BatterLine{
			GameID:     b.GameID,
			Team:       b.Team,
			AtBats:     b.AtBatsOrZero(),
			Hits:       b.HitsOrZero(),
			HomeRuns:   b.HomeRunsOrZero(),
			Walks:      b.WalksOrZero(),
			Strikeouts: b.StrikeoutsOrZero(),
		})
	}
	return lines
}

func pitchersToPipeline(rows []*models.PitcherStatLine) []pipeline.PitcherLine {
	lines := make([]pipeline.PitcherLine, 0, len(rows))
	for _, p := range rows {
		lines = append(lines, pipeline.PitcherLine{
			GameID:         p.GameID,
			Team:           p.Team,
			InningsPitched: p.InningsPitchedOrZero(),
			EarnedRuns:     p.EarnedRunsOrZero(),
		})
	}
	return lines
}

// Output conversions: snapshot rows to persistable feature models. Column
// indices follow pipeline.MLBStatColumns and pipeline.NFLStatColumns.

func mlbSnapshotToModels(rows []pipeline.SnapshotRow) []*models.MLBTeamFeatures {
	features := make([]*models.MLBTeamFeatures, 0, len(rows))
	for _, row := range rows {
		features = append(features, &models.MLBTeamFeatures{
			TeamCode:                 row.Team,
			RollingAdjHitsHome:       row.Home[0],
			RollingAdjHomersHome:     row.Home[1],
			RollingAdjWalksHome:      row.Home[2],
			RollingAdjStrikeoutsHome: row.Home[3],
			RollingAdjHitsAway:       row.Away[0],
			RollingAdjHomersAway:     row.Away[1],
			RollingAdjWalksAway:      row.Away[2],
			RollingAdjStrikeoutsAway: row.Away[3],
		})
	}
	return features
}

func nflSnapshotToModels(rows []pipeline.SnapshotRow) []*models.NFLTeamFeatures {
	features := make([]*models.NFLTeamFeatures, 0, len(rows))
	for _, row := range rows {
		features = append(features, &models.NFLTeamFeatures{
			TeamCode:                 row.Team,
			RollingAdjPtsScoredHome:  row.Home[0],
			RollingAdjPtsAllowedHome: row.Home[1],
			RollingAdjPtsScoredAway:  row.Away[0],
			RollingAdjPtsAllowedAway: row.Away[1],
		})
	}
	return features
}
