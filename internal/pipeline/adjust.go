package pipeline

// RankAdjuster rescales raw per-record stats by the strength rank of the
// opponent faced. Cohort is the league's soft normalizer, slightly above the
// team count (15.5 for a 30-team league, 16.5 for 32), which keeps the
// multiplier bounded and symmetric around 1.0.
type RankAdjuster struct {
	Cohort float64
}

// Adjust returns raw * (1 + (C - opponentRank) / C).
//
// Note the direction: rank 1 (the numerically best opponent) earns the
// largest multiplier. That is how the upstream model was calibrated, so it
// is kept as built rather than inverted.
func (a RankAdjuster) Adjust(raw float64, opponentRank int) float64 {
	return raw * (1 + (a.Cohort-float64(opponentRank))/a.Cohort)
}

// AdjustAgainst looks the opponent up in the rank table and adjusts raw by
// its rank. ok is false when the opponent has no rank; the record's adjusted
// value is then undefined and callers decide whether to drop or zero-fill.
// No default multiplier is ever substituted.
func (a RankAdjuster) AdjustAgainst(raw float64, opponent string, ranks RankTable) (float64, bool) {
	rank, ok := ranks[opponent]
	if !ok {
		return 0, false
	}
	return a.Adjust(raw, rank), true
}
