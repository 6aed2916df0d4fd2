package models

import (
	"database/sql"
	"time"
)

// MLBTeamFeatures is one team's latest feature snapshot row for baseball.
// Columns are the last home-context and away-context trailing rolling
// averages of the opponent-adjusted batting stats. A column is NULL when the
// team has no prior history in that context.
type MLBTeamFeatures struct {
	ID       int    `db:"id"`
	TeamCode string `db:"team_code"`

	RollingAdjHitsHome       sql.NullFloat64 `db:"rolling_avg_adj_hits_home_perf"`
	RollingAdjHomersHome     sql.NullFloat64 `db:"rolling_avg_adj_homers_home_perf"`
	RollingAdjWalksHome      sql.NullFloat64 `db:"rolling_avg_adj_walks_home_perf"`
	RollingAdjStrikeoutsHome sql.NullFloat64 `db:"rolling_avg_adj_strikeouts_home_perf"`

	RollingAdjHitsAway       sql.NullFloat64 `db:"rolling_avg_adj_hits_away_perf"`
	RollingAdjHomersAway     sql.NullFloat64 `db:"rolling_avg_adj_homers_away_perf"`
	RollingAdjWalksAway      sql.NullFloat64 `db:"rolling_avg_adj_walks_away_perf"`
	RollingAdjStrikeoutsAway sql.NullFloat64 `db:"rolling_avg_adj_strikeouts_away_perf"`

	ComputedAt time.Time `db:"computed_at"`
}

// NFLTeamFeatures is one team's latest feature snapshot row for football
type NFLTeamFeatures struct {
	ID       int    `db:"id"`
	TeamCode string `db:"team_code"`

	RollingAdjPtsScoredHome  sql.NullFloat64 `db:"rolling_avg_adj_pts_scored_home"`
	RollingAdjPtsAllowedHome sql.NullFloat64 `db:"rolling_avg_adj_pts_allowed_home"`

	RollingAdjPtsScoredAway  sql.NullFloat64 `db:"rolling_avg_adj_pts_scored_away"`
	RollingAdjPtsAllowedAway sql.NullFloat64 `db:"rolling_avg_adj_pts_allowed_away"`

	ComputedAt time.Time `db:"computed_at"`
}
