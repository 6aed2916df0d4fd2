package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"predictor"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"predictor_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Scheduler
	EnableScheduler  bool   `envconfig:"ENABLE_SCHEDULER" default:"true"`
	RunOnStart       bool   `envconfig:"RUN_ON_START" default:"true"`
	PrecomputeCron   string `envconfig:"PRECOMPUTE_CRON" default:"0 6 * * *"`
	GamePollInterval int    `envconfig:"GAME_POLL_INTERVAL" default:"300"`

	// MLB pipeline
	MLBRollingWindow int     `envconfig:"MLB_ROLLING_WINDOW" default:"10"`
	MLBRankCohort    float64 `envconfig:"MLB_RANK_COHORT" default:"15.5"`

	// NFL pipeline
	NFLRollingWindow int     `envconfig:"NFL_ROLLING_WINDOW" default:"4"`
	NFLRankCohort    float64 `envconfig:"NFL_RANK_COHORT" default:"16.5"`

	// Denominator guard for ratio metrics (ERA, production rate)
	RankEpsilon float64 `envconfig:"RANK_EPSILON" default:"1e-6"`

	// Snapshot cache TTL (in seconds)
	CacheTTLSnapshot int `envconfig:"CACHE_TTL_SNAPSHOT" default:"86400"` // 24 hours

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// SportConfig carries the per-sport pipeline settings handed into each
// engine call, so window sizes and cohort normalizers are never hardcoded
// inside the pipeline itself.
type SportConfig struct {
	RollingWindow int
	RankCohort    float64
	Epsilon       float64
}

// MLB returns the pipeline settings for the baseball run
func (c *Config) MLB() SportConfig {
	return SportConfig{
		RollingWindow: c.MLBRollingWindow,
		RankCohort:    c.MLBRankCohort,
		Epsilon:       c.RankEpsilon,
	}
}

// NFL returns the pipeline settings for the football run
func (c *Config) NFL() SportConfig {
	return SportConfig{
		RollingWindow: c.NFLRollingWindow,
		RankCohort:    c.NFLRankCohort,
		Epsilon:       c.RankEpsilon,
	}
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.MLBRollingWindow < 1 || c.NFLRollingWindow < 1 {
		return fmt.Errorf("rolling windows must be at least 1")
	}

	if c.MLBRankCohort <= 0 || c.NFLRankCohort <= 0 {
		return fmt.Errorf("rank cohorts must be positive")
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// SnapshotTTL returns the Redis TTL for cached snapshots
func (c *Config) SnapshotTTL() time.Duration {
	return time.Duration(c.CacheTTLSnapshot) * time.Second
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
