package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sportspredictor/precompute/internal/config"
	"sportspredictor/precompute/internal/models"
	"sportspredictor/precompute/internal/precompute"
	"sportspredictor/precompute/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler manages background feature recomputation:
// - Nightly full recompute of every sport
// - Periodic polling of the games tables; a change in the completed-game
//   count for a sport triggers a recompute of that sport only
type Scheduler struct {
	cfg      *config.Config
	service  *precompute.Service
	db       *repository.Database
	cron     *cron.Cron
	ticker   *time.Ticker
	stopChan chan struct{}

	// runMu serializes runs so the cron job and the poller never compute
	// over the same tables concurrently
	runMu sync.Mutex

	lastCompleted map[models.Sport]int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config, service *precompute.Service, db *repository.Database) *Scheduler {
	return &Scheduler{
		cfg:           cfg,
		service:       service,
		db:            db,
		cron:          cron.New(),
		stopChan:      make(chan struct{}),
		lastCompleted: make(map[models.Sport]int),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	// Setup nightly full recompute cron job
	if _, err := s.cron.AddFunc(s.cfg.PrecomputeCron, func() {
		log.Info().Msg("Running nightly feature recompute...")
		s.runMu.Lock()
		defer s.runMu.Unlock()
		succeeded := s.service.RunAll(ctx)
		log.Info().Int("sports_succeeded", succeeded).Msg("Nightly feature recompute finished")
	}); err != nil {
		return fmt.Errorf("failed to schedule nightly recompute: %w", err)
	}

	// Start cron scheduler
	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.PrecomputeCron).
		Msg("Nightly recompute scheduled")

	// Start completed-game polling ticker
	interval := time.Duration(s.cfg.GamePollInterval) * time.Second
	s.ticker = time.NewTicker(interval)
	log.Info().
		Dur("interval", interval).
		Msg("Completed game polling started")

	go s.pollCompletedGames(ctx)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")

	if s.cron != nil {
		s.cron.Stop()
	}

	if s.ticker != nil {
		s.ticker.Stop()
	}

	close(s.stopChan)
	log.Info().Msg("Scheduler stopped")
}

// pollCompletedGames watches the completed-game counts and recomputes a
// sport's features as soon as new final scores land
func (s *Scheduler) pollCompletedGames(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Context cancelled, stopping completed game polling")
			return
		case <-s.stopChan:
			log.Info().Msg("Stop signal received, stopping completed game polling")
			return
		case <-s.ticker.C:
			if err := s.checkForNewResults(ctx); err != nil {
				log.Error().Err(err).Msg("Completed game check failed")
			}
		}
	}
}

// checkForNewResults compares each sport's completed-game count against the
// last observed value and recomputes the sports that changed
func (s *Scheduler) checkForNewResults(ctx context.Context) error {
	start := time.Now()

	changed := make([]models.Sport, 0, 2)
	for _, sport := range []models.Sport{models.SportMLB, models.SportNFL} {
		count, err := s.db.Games.CountCompleted(ctx, sport)
		if err != nil {
			return fmt.Errorf("failed to count completed %s games: %w", sport, err)
		}

		last, seen := s.lastCompleted[sport]
		s.lastCompleted[sport] = count
		if seen && count != last {
			log.Info().
				Str("sport", string(sport)).
				Int("previous", last).
				Int("current", count).
				Msg("Completed game count changed")
			changed = append(changed, sport)
		}
	}

	if len(changed) == 0 {
		log.Debug().
			Dur("duration", time.Since(start)).
			Msg("Completed game check: no changes")
		return nil
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()
	for _, sport := range changed {
		var err error
		switch sport {
		case models.SportMLB:
			err = s.service.RunMLB(ctx)
		case models.SportNFL:
			err = s.service.RunNFL(ctx)
		}
		if err != nil {
			log.Error().Err(err).Str("sport", string(sport)).Msg("Triggered recompute failed")
		}
	}

	log.Info().
		Int("sports_recomputed", len(changed)).
		Dur("duration", time.Since(start)).
		Msg("Completed game check finished")

	return nil
}
