// Package cache hands the latest feature snapshots to the serving layer via
// Redis. The cache is an accelerator only: the snapshot tables in Postgres
// remain the source of truth and the worker runs fine without Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"sportspredictor/precompute/internal/metrics"
	"sportspredictor/precompute/internal/models"
)

// Config holds Redis connection configuration
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RedisCache wraps the Redis client used for snapshot hand-off
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Str("port", cfg.Port).
		Msg("Connected to Redis")

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() {
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis connection")
	}
}

// Health checks if Redis is reachable
func (c *RedisCache) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

func snapshotKey(sport models.Sport) string {
	return fmt.Sprintf("features:latest:%s", sport)
}

// SetSnapshot stores a sport's snapshot rows as a JSON payload
func (c *RedisCache) SetSnapshot(ctx context.Context, sport models.Sport, snapshot interface{}, ttl time.Duration) error {
	start := time.Now()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", sport, err)
	}

	if err := c.client.Set(ctx, snapshotKey(sport), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %s snapshot: %w", sport, err)
	}

	metrics.RecordCacheOperation("set", time.Since(start).Seconds())
	log.Debug().
		Str("sport", string(sport)).
		Int("bytes", len(payload)).
		Dur("ttl", ttl).
		Msg("Snapshot cached")

	return nil
}

// GetSnapshot loads a sport's cached snapshot into dest.
// ok is false on a cache miss.
func (c *RedisCache) GetSnapshot(ctx context.Context, sport models.Sport, dest interface{}) (bool, error) {
	start := time.Now()

	payload, err := c.client.Get(ctx, snapshotKey(sport)).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheMiss()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s snapshot from cache: %w", sport, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s snapshot: %w", sport, err)
	}

	metrics.RecordCacheHit()
	metrics.RecordCacheOperation("get", time.Since(start).Seconds())
	return true, nil
}
