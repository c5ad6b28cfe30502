package scraper

import "fmt"

// DefaultRoute is used when a row carries no route label
const DefaultRoute = "Москва Ярославская"

// Day-type keywords as they appear on the station page
const (
	keywordDaily    = "ежедневно"
	keywordWeekdays = "будни"
)

// DayCategory describes on which days a train runs
type DayCategory int

const (
	Daily DayCategory = iota
	Weekdays
)

func (c DayCategory) String() string {
	if c == Weekdays {
		return keywordWeekdays
	}
	return keywordDaily
}

// Clock is a time of day parsed from an "HH:MM" label
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	if c.Hour != o.Hour {
		return c.Hour < o.Hour
	}
	return c.Minute < o.Minute
}

// Entry represents a single departure row from the timetable
type Entry struct {
	Time     string // "05:45", as found in the markup
	Route    string // "Москва Ярославская → Щёлково"
	DaysRaw  string // normalized days label, empty when absent
	Category DayCategory
}
