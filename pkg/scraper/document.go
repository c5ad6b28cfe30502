package scraper

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

var errInvalidEncoding = errors.New("file is not valid UTF-8")

// LoadError is returned when the schedule document cannot be read
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not read schedule file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadDocument reads the raw markup of a schedule page from disk.
func LoadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &LoadError{Path: path, Err: errInvalidEncoding}
	}

	logger.Debug("loaded schedule document", zap.String("path", path), zap.Int("bytes", len(data)))
	return data, nil
}
