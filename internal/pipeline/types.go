// Package pipeline implements the feature precomputation core: season
// ranking, opponent adjustment, per-game aggregation, location-split rolling
// means, and latest-snapshot assembly. Every run is a pure function of its
// input tables; nothing is retained between runs.
package pipeline

import (
	"database/sql"
	"time"
)

// Location tags a team-game row as played at home or away
type Location string

const (
	LocationHome Location = "home"
	LocationAway Location = "away"
)

// Direction declares whether a lower or higher metric value earns rank 1
type Direction int

const (
	// Ascending means lower raw values are better (e.g. ERA, points allowed)
	Ascending Direction = iota
	// Descending means higher raw values are better (e.g. production rate)
	Descending
)

// Settings carries the per-sport knobs handed into a run
type Settings struct {
	RollingWindow int
	RankCohort    float64
	Epsilon       float64
}

// RankTable maps canonical team code to its ordinal rank in [1, N].
// Ranks always form a permutation of 1..N; ties in the underlying metric are
// broken by first occurrence in the input sequence.
type RankTable map[string]int

// MetricRow is one team's season-aggregate metric value, in the order the
// aggregate table was built
type MetricRow struct {
	Team  string
	Value float64
}

// Game is one game record after ingestion, with raw (unresolved) team names.
// Scores are NULL until the game completes; incomplete games are excluded
// from feature computation.
type Game struct {
	GameID       string
	CommenceTime time.Time
	HomeTeam     string
	AwayTeam     string
	HomeScore    sql.NullFloat64
	AwayScore    sql.NullFloat64
}

// Complete reports whether both final scores are present
func (g Game) Complete() bool {
	return g.HomeScore.Valid && g.AwayScore.Valid
}

// BatterLine is one batter's counting stats in one game, zero-filled
type BatterLine struct {
	GameID     string
	Team       string
	AtBats     float64
	Hits       float64
	HomeRuns   float64
	Walks      float64
	Strikeouts float64
}

// PitcherLine is one pitcher's counting stats in one game, zero-filled
type PitcherLine struct {
	GameID         string
	Team           string
	InningsPitched float64
	EarnedRuns     float64
}

// AdjustedRecord is one record's opponent-adjusted stat vector, tagged with
// everything the per-game aggregator needs
type AdjustedRecord struct {
	GameID       string
	Team         string
	HomeTeam     string
	CommenceTime time.Time
	Stats        []float64
}

// TeamGameVector is one (game, team) row of summed adjusted stats
type TeamGameVector struct {
	GameID       string
	Team         string
	Location     Location
	CommenceTime time.Time
	Stats        []float64
}

// FeatureVector is a rolling-mean vector aligned with a run's stat columns.
// An invalid entry means "no history yet", never zero.
type FeatureVector []sql.NullFloat64

// SnapshotRow is one team's latest home and away feature vectors,
// column-unioned. A side the team never played in is all-invalid.
type SnapshotRow struct {
	Team string
	Home FeatureVector
	Away FeatureVector
}

// Report summarizes a run for logging and metrics
type Report struct {
	GamesUsed         int
	SkippedIncomplete int
	DroppedUnresolved int
	SnapshotRows      int
}
