package models

import (
	"database/sql"
	"time"
)

// Sport identifies which pipeline a record belongs to
type Sport string

const (
	SportMLB Sport = "mlb"
	SportNFL Sport = "nfl"
)

// Game represents one scheduled game as ingested from the odds provider.
// Team names are raw provider strings; they are resolved to canonical codes
// before any feature computation.
type Game struct {
	ID           int       `db:"id"`
	GameID       string    `db:"game_id"`
	CommenceTime time.Time `db:"commence_time"`
	HomeTeam     string    `db:"home_team"`
	AwayTeam     string    `db:"away_team"`

	// Final scores; NULL until the game completes
	HomeScore sql.NullInt32 `db:"home_score"`
	AwayScore sql.NullInt32 `db:"away_score"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsComplete returns true if both final scores are recorded.
// Incomplete games are excluded from feature computation.
func (g *Game) IsComplete() bool {
	return g.HomeScore.Valid && g.AwayScore.Valid
}
