package pipeline

import (
	"testing"
	"time"

	"sportspredictor/precompute/internal/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chiefs = "Kansas City Chiefs"
	bills  = "Buffalo Bills"
)

func nflSettings() Settings {
	return Settings{RollingWindow: 4, RankCohort: 16.5, Epsilon: 1e-6}
}

func nflFixture() []Game {
	t1 := time.Date(2025, 9, 7, 18, 0, 0, 0, time.UTC)
	t2 := t1.Add(7 * 24 * time.Hour)
	t3 := t1.Add(14 * 24 * time.Hour)
	t4 := t1.Add(21 * 24 * time.Hour)
	t5 := t1.Add(28 * 24 * time.Hour)

	return []Game{
		{GameID: "f1", CommenceTime: t1, HomeTeam: "KC", AwayTeam: "BUF", HomeScore: score(30), AwayScore: score(20)},
		{GameID: "f2", CommenceTime: t2, HomeTeam: "BUF", AwayTeam: "KC", HomeScore: score(24), AwayScore: score(27)},
		{GameID: "f3", CommenceTime: t3, HomeTeam: "KC", AwayTeam: "BUF", HomeScore: score(21), AwayScore: score(14)},
		// Not played yet
		{GameID: "f4", CommenceTime: t4, HomeTeam: "KC", AwayTeam: "BUF"},
		// Unknown franchise
		{GameID: "f5", CommenceTime: t5, HomeTeam: "London Monarchs", AwayTeam: "KC", HomeScore: score(10), AwayScore: score(31)},
	}
}

func TestRunNFL_Report(t *testing.T) {
	res := RunNFL(nflFixture(), resolver.NFL(), nflSettings())

	assert.Equal(t, 3, res.Report.GamesUsed)
	assert.Equal(t, 1, res.Report.SkippedIncomplete)
	assert.Equal(t, 1, res.Report.DroppedUnresolved)
	assert.Equal(t, 2, res.Report.SnapshotRows)
}

func TestRunNFL_Ranks(t *testing.T) {
	res := RunNFL(nflFixture(), resolver.NFL(), nflSettings())

	// KC averages 26 points scored and 19.3 allowed; BUF the reverse
	assert.Equal(t, 1, res.OffensiveRanks[chiefs])
	assert.Equal(t, 2, res.OffensiveRanks[bills])
	assert.Equal(t, 1, res.DefensiveRanks[chiefs])
	assert.Equal(t, 2, res.DefensiveRanks[bills])
}

func TestRunNFL_Snapshot(t *testing.T) {
	res := RunNFL(nflFixture(), resolver.NFL(), nflSettings())
	require.Len(t, res.Snapshot, 2)

	assert.Equal(t, bills, res.Snapshot[0].Team)
	assert.Equal(t, chiefs, res.Snapshot[1].Team)

	// KC's latest home features are the trailing mean over f1 only: scored 30
	// adjusted by BUF's defensive rank (2), allowed 20 by BUF's offensive
	// rank (2)
	multRank2 := 1 + (16.5-2)/16.5
	kc := res.Snapshot[1]
	require.True(t, kc.Home[0].Valid)
	assert.InDelta(t, 30*multRank2, kc.Home[0].Float64, 1e-9, "points scored")
	assert.InDelta(t, 20*multRank2, kc.Home[1].Float64, 1e-9, "points allowed")

	// KC's single away game is its first: no away history
	assert.False(t, kc.Away[0].Valid)
	assert.False(t, kc.Away[1].Valid)

	// BUF's latest away features cover f1 only: scored 20 and allowed 30,
	// both adjusted by KC's rank of 1
	multRank1 := 1 + (16.5-1)/16.5
	buf := res.Snapshot[0]
	require.True(t, buf.Away[0].Valid)
	assert.InDelta(t, 20*multRank1, buf.Away[0].Float64, 1e-9)
	assert.InDelta(t, 30*multRank1, buf.Away[1].Float64, 1e-9)
	assert.False(t, buf.Home[0].Valid, "Single home game means no home history")
}

func TestRunNFL_Deterministic(t *testing.T) {
	first := RunNFL(nflFixture(), resolver.NFL(), nflSettings())
	second := RunNFL(nflFixture(), resolver.NFL(), nflSettings())
	assert.Equal(t, first, second)
}

func TestRunNFL_EmptyInput(t *testing.T) {
	res := RunNFL(nil, resolver.NFL(), nflSettings())

	assert.Empty(t, res.Snapshot)
	assert.Zero(t, res.Report.GamesUsed)
}
