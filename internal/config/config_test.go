package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MLBRollingWindow)
	assert.Equal(t, 15.5, cfg.MLBRankCohort)
	assert.Equal(t, 4, cfg.NFLRollingWindow)
	assert.Equal(t, 16.5, cfg.NFLRankCohort)
	assert.Equal(t, "0 6 * * *", cfg.PrecomputeCron)
	assert.True(t, cfg.EnableScheduler)
}

func TestLoadMissingPassword(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err, "DATABASE_PASSWORD must be required")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		DatabasePassword: "secret",
		MLBRollingWindow: 10,
		NFLRollingWindow: 4,
		MLBRankCohort:    15.5,
		NFLRankCohort:    16.5,
	}
	assert.NoError(t, cfg.Validate())

	cfg.NFLRollingWindow = 0
	assert.Error(t, cfg.Validate(), "Zero-length windows are rejected")

	cfg.NFLRollingWindow = 4
	cfg.MLBRankCohort = -1
	assert.Error(t, cfg.Validate(), "Cohorts must stay positive")
}

func TestSportConfig(t *testing.T) {
	cfg := &Config{
		MLBRollingWindow: 10,
		MLBRankCohort:    15.5,
		NFLRollingWindow: 4,
		NFLRankCohort:    16.5,
		RankEpsilon:      1e-6,
	}

	mlb := cfg.MLB()
	assert.Equal(t, 10, mlb.RollingWindow)
	assert.Equal(t, 15.5, mlb.RankCohort)
	assert.Equal(t, 1e-6, mlb.Epsilon)

	nfl := cfg.NFL()
	assert.Equal(t, 4, nfl.RollingWindow)
	assert.Equal(t, 16.5, nfl.RankCohort)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DatabaseHost:     "db.internal",
		DatabasePort:     5433,
		DatabaseUser:     "svc",
		DatabasePassword: "pw",
		DatabaseName:     "predictor",
		DatabaseSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=pw dbname=predictor sslmode=require",
		cfg.DatabaseDSN())
}
