package scraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(rows ...string) string {
	return "<html><body><div class=\"schedule\">" + strings.Join(rows, "\n") + "</div></body></html>"
}

func row(time, route, days string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="train-item">`)
	if time != "" {
		sb.WriteString(`<span class="time">` + time + `</span>`)
	}
	if route != "" {
		sb.WriteString(`<span class="route">` + route + `</span>`)
	}
	if days != "" {
		sb.WriteString(`<span class="days">` + days + `</span>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func TestExtractEntries(t *testing.T) {
	html := page(
		row("05:45", "Москва Ярославская → Щёлково", "будни"),
		row("", "Москва Ярославская → Пушкино", "будни"),
		row("06:15", "", "Ежедневно"),
		row("07:20", "Москва Ярославская → Мытищи", ""),
		row("25:99", "Москва Ярославская → Болшево", "будни"),
	)

	results, err := ExtractEntries(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].OK())
	assert.Equal(t, Entry{
		Time:     "05:45",
		Route:    "Москва Ярославская → Щёлково",
		DaysRaw:  "будни",
		Category: Weekdays,
	}, results[0].Entry)

	assert.ErrorIs(t, results[1].Err, ErrMissingTime)

	assert.True(t, results[2].OK())
	assert.Equal(t, DefaultRoute, results[2].Entry.Route)
	assert.Equal(t, "ежедневно", results[2].Entry.DaysRaw)
	assert.Equal(t, Daily, results[2].Entry.Category)

	assert.True(t, results[3].OK())
	assert.Empty(t, results[3].Entry.DaysRaw)
	assert.Equal(t, Daily, results[3].Entry.Category)

	assert.ErrorIs(t, results[4].Err, ErrMalformedTime)
	assert.Equal(t, 4, results[4].Index)
}

func TestParseSchedule_MalformedRowDoesNotStopExtraction(t *testing.T) {
	html := page(
		row("", "Москва Ярославская → Пушкино", "будни"),
		row("abc", "Москва Ярославская → Пушкино", "будни"),
		row("08:15", "Москва Ярославская → Сергиев Посад", "ежедневно"),
	)

	entries, err := ParseSchedule(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "08:15", entries[0].Time)
}

func TestParseSchedule_TrimsWhitespace(t *testing.T) {
	html := page(`<div class="train-item">
		<span class="time">
			09:20
		</span>
		<span class="route">  Москва Ярославская → Фрязино </span>
		<span class="days"> ЕЖЕДНЕВНО </span>
	</div>`)

	entries, err := ParseSchedule(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "09:20", entries[0].Time)
	assert.Equal(t, "Москва Ярославская → Фрязино", entries[0].Route)
	assert.Equal(t, "ежедневно", entries[0].DaysRaw)
}

func TestParseSchedule_IgnoresOtherMarkup(t *testing.T) {
	html := page(
		`<div class="train"><span class="time">04:00</span></div>`,
		`<p class="train-item"><span class="time">04:30</span></p>`,
		row("05:00", "", ""),
	)

	entries, err := ParseSchedule(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "05:00", entries[0].Time)
}

func TestParseSchedule_NoRows(t *testing.T) {
	entries, err := ParseSchedule(strings.NewReader("<html><body><h1>Пусто</h1></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntries(t *testing.T) {
	results := []Extraction{
		{Index: 0, Entry: Entry{Time: "10:00"}},
		{Index: 1, Err: errors.New("boom")},
		{Index: 2, Entry: Entry{Time: "09:00"}},
	}

	entries := Entries(results)
	require.Len(t, entries, 2)
	assert.Equal(t, "10:00", entries[0].Time)
	assert.Equal(t, "09:00", entries[1].Time)
}

func TestExtractEntry_RecoversFromPanic(t *testing.T) {
	// A nil selection panics inside goquery
	entry, err := extractEntry(nil)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.NotErrorIs(t, err, ErrMissingTime)
	assert.NotErrorIs(t, err, ErrMalformedTime)
	assert.Equal(t, Entry{}, entry)
}

func TestExtractEntries_FailedRowBetweenGoodRows(t *testing.T) {
	html := page(
		row("05:45", "Москва Ярославская → Щёлково", "будни"),
		row("", "Москва Ярославская → Пушкино", "будни"),
		row("06:15", "Москва Ярославская → Александров", "ежедневно"),
	)

	results, err := ExtractEntries(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.True(t, results[2].OK())
	assert.Equal(t, []string{"05:45", "06:15"}, times(Entries(results)))
}
