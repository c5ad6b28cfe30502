package scraper

import (
	"bytes"
	"io"

	"go.uber.org/zap"
)

// BuildSchedule extracts, filters and sorts the departures found in r.
func BuildSchedule(r io.Reader, mode Mode) ([]Entry, error) {
	entries, err := ParseSchedule(r)
	if err != nil {
		return nil, err
	}

	kept := Filter(entries, mode)
	logger.Debug("filtered schedule",
		zap.Stringer("mode", mode),
		zap.Int("extracted", len(entries)),
		zap.Int("kept", len(kept)))

	return SortEntries(kept)
}

// LoadSchedule reads the schedule file at path and builds the listing for mode.
func LoadSchedule(path string, mode Mode) ([]Entry, error) {
	data, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return BuildSchedule(bytes.NewReader(data), mode)
}
