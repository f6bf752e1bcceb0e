package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pttdigest"
)

// Ensure LoggingExtractor implements pttdigest.Extractor.
var _ pttdigest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pttdigest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pttdigest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs how many entries and
// comments were found.
func (e *LoggingExtractor) Extract(html string) (entries []*pttdigest.Entry, err error) {
	defer func(begin time.Time) {
		comments := 0
		for _, entry := range entries {
			comments += len(entry.Comments)
		}
		e.logger.Debug("extract",
			"bytes", len(html),
			"entries", len(entries),
			"comments", comments,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
