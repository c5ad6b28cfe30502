package scraper

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseClock parses an "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	hourStr, minuteStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || strings.Contains(minuteStr, ":") {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := parseClockField(hourStr, 23)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := parseClockField(minuteStr, 59)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

func parseClockField(s string, max int) (int, error) {
	if len(s) == 0 || len(s) > 2 || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, fmt.Errorf("%d out of range", n)
	}
	return n, nil
}

// SortEntries returns a copy of entries ordered by time of day. Entries with
// equal times keep their relative order. Any entry whose time cannot be
// parsed aborts the sort.
func SortEntries(entries []Entry) ([]Entry, error) {
	clocks := make([]Clock, len(entries))
	for i, e := range entries {
		c, err := ParseClock(e.Time)
		if err != nil {
			return nil, fmt.Errorf("cannot sort departure %d (%s): %w", i+1, e.Route, err)
		}
		clocks[i] = c
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return clocks[idx[a]].Before(clocks[idx[b]])
	})

	sorted := make([]Entry, len(entries))
	for i, j := range idx {
		sorted[i] = entries[j]
	}
	return sorted, nil
}
