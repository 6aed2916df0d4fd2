package pipeline

import "sort"

// AggregatePerGame collapses adjusted records into one row per (game, team),
// summing every stat column contributed by that team in that game. Rows are
// tagged home or away by comparing the team code against the game's home
// code, and ordered ascending by commence time with the game identifier as
// the deterministic secondary key. A (game, team) with no contributing
// records produces no output row.
func AggregatePerGame(records []AdjustedRecord, numCols int) []TeamGameVector {
	type key struct {
		gameID string
		team   string
	}

	byKey := make(map[key]*TeamGameVector)
	for _, rec := range records {
		k := key{gameID: rec.GameID, team: rec.Team}
		agg, ok := byKey[k]
		if !ok {
			loc := LocationAway
			if rec.Team == rec.HomeTeam {
				loc = LocationHome
			}
			agg = &TeamGameVector{
				GameID:       rec.GameID,
				Team:         rec.Team,
				Location:     loc,
				CommenceTime: rec.CommenceTime,
				Stats:        make([]float64, numCols),
			}
			byKey[k] = agg
		}
		for i, v := range rec.Stats {
			agg.Stats[i] += v
		}
	}

	out := make([]TeamGameVector, 0, len(byKey))
	for _, agg := range byKey {
		out = append(out, *agg)
	}

	sort.Slice(out, func(a, b int) bool {
		if !out[a].CommenceTime.Equal(out[b].CommenceTime) {
			return out[a].CommenceTime.Before(out[b].CommenceTime)
		}
		if out[a].GameID != out[b].GameID {
			return out[a].GameID < out[b].GameID
		}
		return out[a].Team < out[b].Team
	})

	return out
}
