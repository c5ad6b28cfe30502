package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"elektrichka/pkg/scraper"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes one calendar event per departure and day, covering
// `days` days starting at the date of `from` in loc. Weekday-only trains are
// left out on Saturdays and Sundays.
func GenerateICS(entries []scraper.Entry, from time.Time, days int, loc *time.Location, w io.Writer) error {
	if loc == nil {
		return fmt.Errorf("no timezone given")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	from = from.In(loc)
	now := time.Now()

	for day := 0; day < days; day++ {
		date := from.AddDate(0, 0, day)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		for i, e := range entries {
			if weekend && e.Category == scraper.Weekdays {
				continue
			}

			clock, err := scraper.ParseClock(e.Time)
			if err != nil {
				continue // Skip invalid times
			}

			start := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour, clock.Minute, 0, 0, loc)

			event := cal.AddEvent(fmt.Sprintf("%s-%d@elektrichka", start.Format("20060102T1504"), i))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetSummary(fmt.Sprintf("🚆 %s %s", clock, e.Route))
			event.SetLocation(origin(e.Route))
			event.SetDescription(fmt.Sprintf("Дни: %s", e.Category))
		}
	}

	return cal.SerializeTo(w)
}

// origin returns the departure station of an "A → B" route label
func origin(route string) string {
	if from, _, ok := strings.Cut(route, "→"); ok {
		return strings.TrimSpace(from)
	}
	return route
}
