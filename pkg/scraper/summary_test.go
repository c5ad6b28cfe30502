package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeRoutes(t *testing.T) {
	entries, err := BuildSchedule(strings.NewReader(SampleDocument()), All)
	require.NoError(t, err)

	summary := SummarizeRoutes(entries, 2)
	require.Len(t, summary, 8)

	// Щёлково leaves first at 05:45 and runs three times; only two are kept
	assert.Equal(t, "Москва Ярославская → Щёлково", summary[0].Route)
	assert.Equal(t, []string{"05:45", "17:30"}, times(summary[0].Departures))

	assert.Equal(t, "Москва Ярославская → Александров", summary[1].Route)
	assert.Equal(t, []string{"06:15", "18:15"}, times(summary[1].Departures))
}

func TestSummarizeRoutes_Unlimited(t *testing.T) {
	entries := []Entry{
		{Time: "05:45", Route: "A"},
		{Time: "06:00", Route: "B"},
		{Time: "07:00", Route: "A"},
		{Time: "08:00", Route: "A"},
	}

	summary := SummarizeRoutes(entries, 0)
	require.Len(t, summary, 2)
	assert.Len(t, summary[0].Departures, 3)
	assert.Len(t, summary[1].Departures, 1)
}

func TestSummarizeRoutes_Empty(t *testing.T) {
	assert.Empty(t, SummarizeRoutes(nil, 3))
}
