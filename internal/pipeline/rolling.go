package pipeline

import "database/sql"

// rollingWindow is a fixed-capacity queue over the W most recent prior
// observations of one stat column for one team.
type rollingWindow struct {
	size  int
	buf   []float64
	head  int
	count int
	sum   float64
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{
		size: size,
		buf:  make([]float64, size),
	}
}

// mean returns the average of the held observations.
// ok is false while the window is empty: the "no history yet" state.
func (w *rollingWindow) mean() (float64, bool) {
	if w.count == 0 {
		return 0, false
	}
	return w.sum / float64(w.count), true
}

// push appends an observation, evicting the oldest once the window is full
func (w *rollingWindow) push(v float64) {
	if w.count == w.size {
		w.sum -= w.buf[w.head]
	} else {
		w.count++
	}
	w.buf[w.head] = v
	w.sum += v
	w.head = (w.head + 1) % w.size
}

// RollingSeries computes, per team within one location partition, the
// time-ordered series of trailing rolling means of each stat column. Rows
// must already be ordered ascending by (commence time, game id); the output
// slice for a team is aligned with that team's rows in that order.
//
// The mean at position i covers the previous up-to-window observations only:
// the current observation is never included (no look-ahead), partial windows
// average whatever history exists, and the first observation is undefined.
func RollingSeries(rows []TeamGameVector, loc Location, window, numCols int) map[string][]FeatureVector {
	windows := make(map[string][]*rollingWindow)
	series := make(map[string][]FeatureVector)

	for _, row := range rows {
		if row.Location != loc {
			continue
		}

		cols, ok := windows[row.Team]
		if !ok {
			cols = make([]*rollingWindow, numCols)
			for i := range cols {
				cols[i] = newRollingWindow(window)
			}
			windows[row.Team] = cols
		}

		// Record the trailing mean before admitting the current row
		vec := make(FeatureVector, numCols)
		for i, w := range cols {
			if m, ok := w.mean(); ok {
				vec[i] = sql.NullFloat64{Float64: m, Valid: true}
			}
		}
		series[row.Team] = append(series[row.Team], vec)

		for i, v := range row.Stats {
			cols[i].push(v)
		}
	}

	return series
}

// Latest returns the final entry of each team's series
func Latest(series map[string][]FeatureVector) map[string]FeatureVector {
	latest := make(map[string]FeatureVector, len(series))
	for team, vectors := range series {
		if len(vectors) > 0 {
			latest[team] = vectors[len(vectors)-1]
		}
	}
	return latest
}
