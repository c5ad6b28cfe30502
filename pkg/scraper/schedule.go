package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Markup of one departure row on the station page
const (
	rowSelector   = "div.train-item"
	timeSelector  = "span.time"
	routeSelector = "span.route"
	daysSelector  = "span.days"
)

var (
	ErrMissingTime   = errors.New("row has no time label")
	ErrMalformedTime = errors.New("time is not in HH:MM format")
	ErrMalformedRow  = errors.New("row could not be processed")
)

// Extraction is the outcome of processing one row container.
// Err is nil when Entry holds a usable departure.
type Extraction struct {
	Index int
	Entry Entry
	Err   error
}

// OK reports whether the row produced an entry.
func (x Extraction) OK() bool { return x.Err == nil }

// ExtractEntries parses the schedule markup and returns one result per row
// container, in document order. Rows that fail are reported in their result
// and never stop the remaining rows from being processed.
func ExtractEntries(r io.Reader) ([]Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule markup: %w", err)
	}

	var results []Extraction

	doc.Find(rowSelector).Each(func(i int, sel *goquery.Selection) {
		entry, err := extractEntry(sel)
		if err != nil {
			logger.Debug("skipping schedule row", zap.Int("row", i), zap.Error(err))
		}
		results = append(results, Extraction{Index: i, Entry: entry, Err: err})
	})

	return results, nil
}

// Entries returns the successfully extracted entries, preserving order.
func Entries(results []Extraction) []Entry {
	var entries []Entry
	for _, x := range results {
		if x.OK() {
			entries = append(entries, x.Entry)
		}
	}
	return entries
}

// ParseSchedule extracts every well-formed entry from the markup.
func ParseSchedule(r io.Reader) ([]Entry, error) {
	results, err := ExtractEntries(r)
	if err != nil {
		return nil, err
	}
	return Entries(results), nil
}

func extractEntry(sel *goquery.Selection) (entry Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry = Entry{}
			err = fmt.Errorf("%w: %v", ErrMalformedRow, r)
		}
	}()

	timeElem := sel.Find(timeSelector).First()
	if timeElem.Length() == 0 {
		return Entry{}, ErrMissingTime
	}
	timeText := strings.TrimSpace(timeElem.Text())
	if _, err := ParseClock(timeText); err != nil {
		return Entry{}, err
	}

	route := DefaultRoute
	if routeElem := sel.Find(routeSelector).First(); routeElem.Length() > 0 {
		route = strings.TrimSpace(routeElem.Text())
	}

	var days string
	if daysElem := sel.Find(daysSelector).First(); daysElem.Length() > 0 {
		days = normalizeDays(daysElem.Text())
	}

	return Entry{
		Time:     timeText,
		Route:    route,
		DaysRaw:  days,
		Category: Classify(days),
	}, nil
}
