package models

import (
	"database/sql"
	"time"
)

// BatterStatLine represents one batter's counting stats in one game.
// Numeric fields may be NULL in the source table; the cleaning stage treats
// them as zero before they reach the pipeline.
type BatterStatLine struct {
	ID         int    `db:"id"`
	GameID     string `db:"game_id"`
	Team       string `db:"team"`
	PlayerName string `db:"player_name"`

	AtBats     sql.NullFloat64 `db:"at_bats"`
	Hits       sql.NullFloat64 `db:"hits"`
	HomeRuns   sql.NullFloat64 `db:"home_runs"`
	Walks      sql.NullFloat64 `db:"walks"`
	Strikeouts sql.NullFloat64 `db:"strikeouts"`

	CreatedAt time.Time `db:"created_at"`
}

// PitcherStatLine represents one pitcher's counting stats in one game
type PitcherStatLine struct {
	ID         int    `db:"id"`
	GameID     string `db:"game_id"`
	Team       string `db:"team"`
	PlayerName string `db:"player_name"`

	InningsPitched sql.NullFloat64 `db:"innings_pitched"`
	EarnedRuns     sql.NullFloat64 `db:"earned_runs"`
	Strikeouts     sql.NullFloat64 `db:"strikeouts"`
	WalksAllowed   sql.NullFloat64 `db:"walks_allowed"`
	HitsAllowed    sql.NullFloat64 `db:"hits_allowed"`

	CreatedAt time.Time `db:"created_at"`
}

// Zero-fill helpers for the cleaning stage

// HitsOrZero returns the hits count, treating NULL as zero
func (b *BatterStatLine) HitsOrZero() float64 { return nullOrZero(b.Hits) }

// HomeRunsOrZero returns the home run count, treating NULL as zero
func (b *BatterStatLine) HomeRunsOrZero() float64 { return nullOrZero(b.HomeRuns) }

// WalksOrZero returns the walk count, treating NULL as zero
func (b *BatterStatLine) WalksOrZero() float64 { return nullOrZero(b.Walks) }

// StrikeoutsOrZero returns the strikeout count, treating NULL as zero
func (b *BatterStatLine) StrikeoutsOrZero() float64 { return nullOrZero(b.Strikeouts) }

// AtBatsOrZero returns the at-bat count, treating NULL as zero
func (b *BatterStatLine) AtBatsOrZero() float64 { return nullOrZero(b.AtBats) }

// EarnedRunsOrZero returns the earned run count, treating NULL as zero
func (p *PitcherStatLine) EarnedRunsOrZero() float64 { return nullOrZero(p.EarnedRuns) }

// InningsPitchedOrZero returns innings pitched, treating NULL as zero
func (p *PitcherStatLine) InningsPitchedOrZero() float64 { return nullOrZero(p.InningsPitched) }

func nullOrZero(v sql.NullFloat64) float64 {
	if v.Valid {
		return v.Float64
	}
	return 0
}
