package scraper

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger routes the package's diagnostics to l. A nil logger silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
