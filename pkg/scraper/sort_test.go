package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	valid := map[string]Clock{
		"05:45":   {5, 45},
		"5:45":    {5, 45},
		"00:00":   {0, 0},
		"23:59":   {23, 59},
		" 12:30 ": {12, 30},
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}

	invalid := []string{"", "0545", "24:00", "12:60", "12:30:00", "-1:30", "+1:30", "ab:cd", "12:", ":30", "0005:045", "005:45", "05:045"}
	for _, in := range invalid {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrMalformedTime, in)
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "05:07", Clock{5, 7}.String())
	assert.True(t, Clock{5, 45}.Before(Clock{6, 0}))
	assert.True(t, Clock{6, 0}.Before(Clock{6, 1}))
	assert.False(t, Clock{6, 1}.Before(Clock{6, 1}))
	assert.False(t, Clock{23, 0}.Before(Clock{9, 59}))
}

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{Time: "23:30", Route: "A"},
		{Time: "5:45", Route: "B"},
		{Time: "06:15", Route: "C"},
		{Time: "05:45", Route: "D"},
		{Time: "10:00", Route: "E"},
	}

	sorted, err := SortEntries(entries)
	require.NoError(t, err)

	var routes []string
	for _, e := range sorted {
		routes = append(routes, e.Route)
	}
	// B and D share a time and keep their input order
	assert.Equal(t, []string{"B", "D", "C", "E", "A"}, routes)

	// input is untouched
	assert.Equal(t, "23:30", entries[0].Time)
}

func TestSortEntries_MalformedTime(t *testing.T) {
	_, err := SortEntries([]Entry{{Time: "05:45"}, {Time: "late", Route: "X"}})
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestSortEntries_Empty(t *testing.T) {
	sorted, err := SortEntries(nil)
	require.NoError(t, err)
	assert.Empty(t, sorted)
}
