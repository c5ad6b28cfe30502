package scraper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func normalizeDays(s string) string {
	return cases.Lower(language.Russian).String(strings.TrimSpace(s))
}

func runsDaily(days string) bool    { return strings.Contains(days, keywordDaily) }
func runsWeekdays(days string) bool { return strings.Contains(days, keywordWeekdays) }

// Classify derives the day category from a days label.
// "ежедневно" wins over "будни"; labels with neither keyword fall back to Daily.
func Classify(days string) DayCategory {
	days = normalizeDays(days)
	switch {
	case runsDaily(days):
		return Daily
	case runsWeekdays(days):
		return Weekdays
	default:
		return Daily
	}
}

// Mode selects which entries are kept in the listing
type Mode int

const (
	All Mode = iota
	WeekdaysOnly
	DailyOnly
)

func (m Mode) String() string {
	switch m {
	case WeekdaysOnly:
		return "weekdays"
	case DailyOnly:
		return "daily"
	default:
		return "all"
	}
}

// ParseMode maps a command-line filter argument to a Mode.
// Unknown or empty values select All.
func ParseMode(arg string) Mode {
	switch cases.Lower(language.Russian).String(strings.TrimSpace(arg)) {
	case "weekdays", keywordWeekdays:
		return WeekdaysOnly
	case "daily", keywordDaily:
		return DailyOnly
	default:
		return All
	}
}

// Retains reports whether e passes the filter. The decision is made on the
// keyword found in the days label, so rows with an unrecognized label only
// show up under All.
func (m Mode) Retains(e Entry) bool {
	days := normalizeDays(e.DaysRaw)
	switch m {
	case WeekdaysOnly:
		return runsWeekdays(days)
	case DailyOnly:
		return runsDaily(days)
	default:
		return true
	}
}

// Filter returns the entries retained by m, in their original order.
func Filter(entries []Entry, m Mode) []Entry {
	var kept []Entry
	for _, e := range entries {
		if m.Retains(e) {
			kept = append(kept, e)
		}
	}
	return kept
}
