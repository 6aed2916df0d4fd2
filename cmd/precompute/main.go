// Command precompute runs the feature pipeline once for every sport and
// exits. Useful for manual backfills and for verifying a deployment before
// enabling the worker's scheduler.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"sportspredictor/precompute/internal/cache"
	"sportspredictor/precompute/internal/config"
	"sportspredictor/precompute/internal/precompute"
	"sportspredictor/precompute/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     fmt.Sprintf("%d", cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// 1. Validate database connectivity
	log.Info().Msg("Validating service health...")
	if err := db.Health(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	// 2. Connect to Redis; the run proceeds without it
	redisCache, err := cache.NewRedisCache(cache.Config{
		Host:     cfg.RedisHost,
		Port:     strconv.Itoa(cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis - snapshots will not be cached")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// 3. Run every sport; one sport's failure never blocks the other
	service := precompute.NewService(cfg, db, redisCache)
	succeeded := service.RunAll(ctx)

	log.Info().Int("sports_succeeded", succeeded).Msg("Feature precompute run complete")

	if succeeded == 0 {
		os.Exit(1)
	}
}
