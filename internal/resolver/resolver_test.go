package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTableResolver(t *testing.T) {
	resolve := NewTableResolver(map[string]string{"Raw Name": "CODE"})

	code, ok := resolve("Raw Name")
	assert.True(t, ok)
	assert.Equal(t, "CODE", code)

	// Surrounding whitespace is not significant
	code, ok = resolve("  Raw Name ")
	assert.True(t, ok)
	assert.Equal(t, "CODE", code)

	_, ok = resolve("Unknown")
	assert.False(t, ok, "Unknown names must be reported, not defaulted")
}

func TestMLB(t *testing.T) {
	resolve := MLB()

	tests := []struct {
		raw  string
		code string
	}{
		{"NYY", "NYY"},
		{"Yankees", "NYY"},
		{"New York Yankees", "NYY"},
		{"KCR", "KC"},
		{"SDP", "SD"},
		{"TBR", "TB"},
		{"WSN", "WSH"},
		{"D-backs", "ARI"},
		{"Guardians", "CLE"},
		{"Indians", "CLE"},
	}
	for _, tt := range tests {
		code, ok := resolve(tt.raw)
		assert.True(t, ok, "%q should resolve", tt.raw)
		assert.Equal(t, tt.code, code, "for %q", tt.raw)
	}

	_, ok := resolve("Springfield Isotopes")
	assert.False(t, ok)
}

func TestNFL(t *testing.T) {
	resolve := NFL()

	code, ok := resolve("GB")
	assert.True(t, ok)
	assert.Equal(t, "Green Bay Packers", code)

	// Canonical names resolve to themselves
	code, ok = resolve("Green Bay Packers")
	assert.True(t, ok)
	assert.Equal(t, "Green Bay Packers", code)

	// Relocated franchise alias
	code, ok = resolve("OAK")
	assert.True(t, ok)
	assert.Equal(t, "Las Vegas Raiders", code)

	_, ok = resolve("London Monarchs")
	assert.False(t, ok)
}
