package pipeline

import (
	"time"

	"sportspredictor/precompute/internal/resolver"
)

// NFLStatColumns is the fixed order of adjusted scoring stat columns carried
// through the football run.
var NFLStatColumns = []string{"adj_points_scored", "adj_points_allowed"}

// NFLResult is the output of one football run
type NFLResult struct {
	Snapshot       []SnapshotRow
	OffensiveRanks RankTable
	DefensiveRanks RankTable
	Report         Report
}

// RunNFL executes the football feature pipeline. Football has no
// player-level stats: each completed game yields two team-game rows (points
// scored and allowed from each side's perspective), ranked on season scoring
// means, adjusted by the opponent's defensive rank for points scored and
// offensive rank for points allowed, then rolled and snapshotted exactly
// like the baseball run.
func RunNFL(games []Game, resolve resolver.Resolver, st Settings) *NFLResult {
	res := &NFLResult{}

	kept := resolveGames(games, resolve, &res.Report)

	type teamGame struct {
		gameID       string
		team         string
		opponent     string
		home         string
		commenceTime time.Time
		scored       float64
		allowed      float64
	}

	// Two perspectives per completed game
	rows := make([]teamGame, 0, 2*len(kept))
	for _, g := range games {
		kg, ok := kept[g.GameID]
		if !ok {
			continue
		}
		homeScore := g.HomeScore.Float64
		awayScore := g.AwayScore.Float64

		rows = append(rows,
			teamGame{gameID: g.GameID, team: kg.home, opponent: kg.away, home: kg.home,
				commenceTime: kg.commenceTime, scored: homeScore, allowed: awayScore},
			teamGame{gameID: g.GameID, team: kg.away, opponent: kg.home, home: kg.home,
				commenceTime: kg.commenceTime, scored: awayScore, allowed: homeScore},
		)
	}

	// Season scoring means per team
	type scoringTotals struct {
		scored  float64
		allowed float64
		played  float64
	}
	totals := make(map[string]*scoringTotals)
	for _, row := range rows {
		t, ok := totals[row.team]
		if !ok {
			t = &scoringTotals{}
			totals[row.team] = t
		}
		t.scored += row.scored
		t.allowed += row.allowed
		t.played++
	}

	offRows := make([]MetricRow, 0, len(totals))
	defRows := make([]MetricRow, 0, len(totals))
	for _, team := range sortedKeys(totals) {
		t := totals[team]
		offRows = append(offRows, MetricRow{Team: team, Value: SafeRatio(t.scored, t.played, st.Epsilon)})
		defRows = append(defRows, MetricRow{Team: team, Value: SafeRatio(t.allowed, t.played, st.Epsilon)})
	}
	res.OffensiveRanks = Rank(offRows, Descending)
	res.DefensiveRanks = Rank(defRows, Ascending)

	// Opponent-adjust both scoring stats
	adjuster := RankAdjuster{Cohort: st.RankCohort}
	records := make([]AdjustedRecord, 0, len(rows))
	for _, row := range rows {
		adjScored, okScored := adjuster.AdjustAgainst(row.scored, row.opponent, res.DefensiveRanks)
		adjAllowed, okAllowed := adjuster.AdjustAgainst(row.allowed, row.opponent, res.OffensiveRanks)
		if !okScored || !okAllowed {
			res.Report.DroppedUnresolved++
			continue
		}

		records = append(records, AdjustedRecord{
			GameID:       row.gameID,
			Team:         row.team,
			HomeTeam:     row.home,
			CommenceTime: row.commenceTime,
			Stats:        []float64{adjScored, adjAllowed},
		})
	}

	aggs := AggregatePerGame(records, len(NFLStatColumns))

	homeSeries := RollingSeries(aggs, LocationHome, st.RollingWindow, len(NFLStatColumns))
	awaySeries := RollingSeries(aggs, LocationAway, st.RollingWindow, len(NFLStatColumns))

	res.Snapshot = AssembleSnapshot(Latest(homeSeries), Latest(awaySeries), len(NFLStatColumns))
	res.Report.SnapshotRows = len(res.Snapshot)

	return res
}
