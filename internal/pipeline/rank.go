package pipeline

import "sort"

// Rank assigns strict ordinal ranks 1..N to the given metric rows.
// Rank 1 goes to the best team per the declared direction. Equal metric
// values are ranked by first occurrence in the input sequence, so the output
// is reproducible given identical input ordering. Fewer than one row yields
// an empty table, not an error.
func Rank(rows []MetricRow, dir Direction) RankTable {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := rows[idx[a]].Value, rows[idx[b]].Value
		if dir == Descending {
			return va > vb
		}
		return va < vb
	})

	ranks := make(RankTable, len(rows))
	for pos, i := range idx {
		ranks[rows[i].Team] = pos + 1
	}
	return ranks
}

// SafeRatio divides num by den with a small denominator guard, so ratio
// metrics never divide by true zero.
func SafeRatio(num, den, epsilon float64) float64 {
	return num / (den + epsilon)
}
