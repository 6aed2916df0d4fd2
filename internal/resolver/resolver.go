// Package resolver provides the team-name resolution capability injected
// into the feature pipeline. The pipeline itself never encodes the mapping;
// it only consumes a Resolver and drops records that fail to resolve.
package resolver

import "strings"

// Resolver maps a raw provider team name to a canonical team code.
// ok is false when the name cannot be resolved; callers must drop the
// record rather than coerce it into a placeholder bucket.
type Resolver func(raw string) (code string, ok bool)

// NewTableResolver builds a Resolver backed by a lookup table.
// Raw names are whitespace-trimmed before lookup.
func NewTableResolver(table map[string]string) Resolver {
	return func(raw string) (string, bool) {
		code, ok := table[strings.TrimSpace(raw)]
		return code, ok
	}
}

// MLB returns the resolver for baseball team names
func MLB() Resolver {
	return NewTableResolver(mlbTeamNames)
}

// NFL returns the resolver for football team names.
// Canonical full names resolve to themselves, so only genuinely unknown
// strings are reported unresolved.
func NFL() Resolver {
	return NewTableResolver(nflTeamNames)
}
