// Package slog provides log/slog decorators for the pttdigest interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pttdigest"
)

var _ pttdigest.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher records each page download. Successful downloads log at
// info level and failed ones at warn, so failures surface under the CLI's
// default level.
type LoggingFetcher struct {
	next   pttdigest.Fetcher
	logger *slog.Logger
}

func NewLoggingFetcher(next pttdigest.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.next.Fetch(ctx, url)
	elapsed := time.Since(start)

	if err != nil {
		f.logger.WarnContext(ctx, "fetch failed", "url", url, "duration", elapsed, "err", err)
		return "", err
	}
	f.logger.InfoContext(ctx, "fetch", "url", url, "bytes", len(html), "duration", elapsed)
	return html, nil
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
