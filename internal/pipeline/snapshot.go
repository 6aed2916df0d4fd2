package pipeline

import "sort"

// AssembleSnapshot merges each team's latest home-context and away-context
// feature vectors into one row per team: a full outer join on team code. A
// team present in only one location context still appears, with the missing
// side's columns left unset. Rows are ordered by team code, so repeated runs
// over identical input produce identical output regardless of upstream row
// order.
func AssembleSnapshot(home, away map[string]FeatureVector, numCols int) []SnapshotRow {
	teams := make(map[string]struct{}, len(home)+len(away))
	for team := range home {
		teams[team] = struct{}{}
	}
	for team := range away {
		teams[team] = struct{}{}
	}

	codes := make([]string, 0, len(teams))
	for team := range teams {
		codes = append(codes, team)
	}
	sort.Strings(codes)

	rows := make([]SnapshotRow, 0, len(codes))
	for _, team := range codes {
		row := SnapshotRow{Team: team}
		if vec, ok := home[team]; ok {
			row.Home = vec
		} else {
			row.Home = make(FeatureVector, numCols)
		}
		if vec, ok := away[team]; ok {
			row.Away = vec
		} else {
			row.Away = make(FeatureVector, numCols)
		}
		rows = append(rows, row)
	}

	return rows
}
