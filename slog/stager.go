package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pttdigest"
)

// Ensure LoggingStager implements pttdigest.Stager.
var _ pttdigest.Stager = (*LoggingStager)(nil)

// LoggingStager wraps a Stager with logging. Missing pages on Load and
// Remove are expected and logged at debug level.
type LoggingStager struct {
	next   pttdigest.Stager
	logger *slog.Logger
}

// NewLoggingStager creates a new LoggingStager.
func NewLoggingStager(next pttdigest.Stager, logger *slog.Logger) *LoggingStager {
	return &LoggingStager{next: next, logger: logger}
}

func (s *LoggingStager) Save(ctx context.Context, page int, html string) (err error) {
	defer func() {
		s.log(ctx, err, "stage save", "page", page, "bytes", len(html), "err", err)
	}()
	return s.next.Save(ctx, page, html)
}

func (s *LoggingStager) Load(ctx context.Context, page int) (html string, err error) {
	defer func() {
		s.log(ctx, err, "stage load", "page", page, "bytes", len(html), "err", err)
	}()
	return s.next.Load(ctx, page)
}

func (s *LoggingStager) Remove(ctx context.Context, page int) (err error) {
	defer func() {
		s.log(ctx, err, "stage remove", "page", page, "err", err)
	}()
	return s.next.Remove(ctx, page)
}

func (s *LoggingStager) log(ctx context.Context, err error, msg string, args ...any) {
	level := slog.LevelInfo
	if err != nil && pttdigest.ErrorCode(err) == pttdigest.ENOTFOUND {
		level = slog.LevelDebug
	} else if err != nil {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, msg, args...)
}
