package pipeline

import (
	"sort"
	"time"

	"sportspredictor/precompute/internal/resolver"
)

// MLBStatColumns is the fixed order of adjusted batting stat columns carried
// through the baseball run.
var MLBStatColumns = []string{"adj_hits", "adj_home_runs", "adj_walks", "adj_strikeouts"}

// MLBResult is the output of one baseball run
type MLBResult struct {
	Snapshot      []SnapshotRow
	PitchingRanks RankTable
	HittingRanks  RankTable
	Report        Report
}

type keptGame struct {
	commenceTime time.Time
	home         string
	away         string
}

// RunMLB executes the six-stage baseball feature pipeline over the supplied
// tables: resolve team names, rank season pitching and hitting strength,
// opponent-adjust each batter's counting stats by the opposing pitching
// rank, aggregate per (game, team), compute location-split trailing rolling
// means, and assemble the latest snapshot per team.
func RunMLB(games []Game, batters []BatterLine, pitchers []PitcherLine, resolve resolver.Resolver, st Settings) *MLBResult {
	res := &MLBResult{}

	kept := resolveGames(games, resolve, &res.Report)

	// Season pitching strength: ERA, lower is better
	type pitchTotals struct{ earnedRuns, innings float64 }
	pitchAgg := make(map[string]*pitchTotals)
	for _, line := range pitchers {
		team, ok := resolve(line.Team)
		if !ok {
			res.Report.DroppedUnresolved++
			continue
		}
		t, ok := pitchAgg[team]
		if !ok {
			t = &pitchTotals{}
			pitchAgg[team] = t
		}
		t.earnedRuns += line.EarnedRuns
		t.innings += line.InningsPitched
	}
	pitchRows := make([]MetricRow, 0, len(pitchAgg))
	for _, team := range sortedKeys(pitchAgg) {
		t := pitchAgg[team]
		pitchRows = append(pitchRows, MetricRow{
			Team:  team,
			Value: SafeRatio(t.earnedRuns*9, t.innings, st.Epsilon),
		})
	}
	res.PitchingRanks = Rank(pitchRows, Ascending)

	// Season hitting strength: production rate, higher is better.
	// Computed and reported alongside the pitching rank; batter adjustment
	// below uses the opponent's pitching rank.
	type hitTotals struct{ hits, homers, atBats float64 }
	hitAgg := make(map[string]*hitTotals)
	for _, line := range batters {
		team, ok := resolve(line.Team)
		if !ok {
			res.Report.DroppedUnresolved++
			continue
		}
		t, ok := hitAgg[team]
		if !ok {
			t = &hitTotals{}
			hitAgg[team] = t
		}
		t.hits += line.Hits
		t.homers += line.HomeRuns
		t.atBats += line.AtBats
	}
	hitRows := make([]MetricRow, 0, len(hitAgg))
	for _, team := range sortedKeys(hitAgg) {
		t := hitAgg[team]
		hitRows = append(hitRows, MetricRow{
			Team:  team,
			Value: SafeRatio(t.hits+2*t.homers, t.atBats, st.Epsilon),
		})
	}
	res.HittingRanks = Rank(hitRows, Descending)

	// Opponent-adjust each batter line against the opposing pitching rank
	adjuster := RankAdjuster{Cohort: st.RankCohort}
	records := make([]AdjustedRecord, 0, len(batters))
	for _, line := range batters {
		team, ok := resolve(line.Team)
		if !ok {
			// Already counted while building the hitting aggregate
			continue
		}

		game, ok := kept[line.GameID]
		if !ok {
			// Game was incomplete or unresolvable; its skip is already counted
			continue
		}

		var opponent string
		switch team {
		case game.home:
			opponent = game.away
		case game.away:
			opponent = game.home
		default:
			// Team code does not match the game's home/away pair
			res.Report.DroppedUnresolved++
			continue
		}

		stats := make([]float64, len(MLBStatColumns))
		raw := []float64{line.Hits, line.HomeRuns, line.Walks, line.Strikeouts}
		defined := true
		for i, v := range raw {
			adj, ok := adjuster.AdjustAgainst(v, opponent, res.PitchingRanks)
			if !ok {
				defined = false
				break
			}
			stats[i] = adj
		}
		if !defined {
			// Opponent has no pitching rank; the adjusted value is undefined
			res.Report.DroppedUnresolved++
			continue
		}

		records = append(records, AdjustedRecord{
			GameID:       line.GameID,
			Team:         team,
			HomeTeam:     game.home,
			CommenceTime: game.commenceTime,
			Stats:        stats,
		})
	}

	aggs := AggregatePerGame(records, len(MLBStatColumns))

	homeSeries := RollingSeries(aggs, LocationHome, st.RollingWindow, len(MLBStatColumns))
	awaySeries := RollingSeries(aggs, LocationAway, st.RollingWindow, len(MLBStatColumns))

	res.Snapshot = AssembleSnapshot(Latest(homeSeries), Latest(awaySeries), len(MLBStatColumns))
	res.Report.SnapshotRows = len(res.Snapshot)

	return res
}

// resolveGames drops incomplete and unresolvable games, counting each kind,
// and returns the surviving games keyed by game identifier with canonical
// team codes.
func resolveGames(games []Game, resolve resolver.Resolver, report *Report) map[string]keptGame {
	kept := make(map[string]keptGame, len(games))
	for _, g := range games {
		if !g.Complete() {
			report.SkippedIncomplete++
			continue
		}
		home, okHome := resolve(g.HomeTeam)
		away, okAway := resolve(g.AwayTeam)
		if !okHome || !okAway {
			report.DroppedUnresolved++
			continue
		}
		kept[g.GameID] = keptGame{
			commenceTime: g.CommenceTime,
			home:         home,
			away:         away,
		}
	}
	report.GamesUsed = len(kept)
	return kept
}

// sortedKeys returns map keys in ascending order, the deterministic build
// order for season aggregate tables (and therefore the rank tie-break order).
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
