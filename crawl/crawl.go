// Package crawl orchestrates a digest run: it downloads each listing page
// into staging, extracts entries from the staged pages into the report,
// and sweeps the staging files afterwards.
//
// Pages are processed strictly one at a time. A failure on one page is
// reported through the progress callback and the run moves on to the next.
package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/pttdigest"
)

// Crawler runs the download, aggregate and cleanup phases.
type Crawler struct {
	Source      pttdigest.Source
	Fetcher     pttdigest.Fetcher
	Extractor   pttdigest.Extractor
	Stager      pttdigest.Stager
	RateLimiter pttdigest.DomainLimiter // optional

	// KeepStaged skips the cleanup phase in Run.
	KeepStaged bool
}

// Result holds the outcome of a run.
type Result struct {
	Staged       int // pages downloaded into staging
	FetchFailed  int
	Parsed       int // staged pages that produced entries (possibly none)
	ParseFailed  int
	Entries      int
	Removed      int
	RemoveFailed int
}

// ProgressEvent reports progress on a single page.
type ProgressEvent struct {
	Type  ProgressType
	Page  int
	Total int
	URL   string
	Bytes int // size of the staged page, for ProgressFetched
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetched ProgressType = iota
	ProgressFetchFailed
	ProgressParsed
	ProgressParseFailed
	ProgressRemoved
	ProgressRemoveFailed
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

func (f ProgressFunc) emit(e ProgressEvent) {
	if f != nil {
		f(e)
	}
}

// Run downloads pages [0, pages) of the user's listing, writes every
// extracted entry to report, then removes the staged pages unless
// KeepStaged is set. Cleanup runs even when an earlier phase fails.
func (c *Crawler) Run(ctx context.Context, user string, pages int, report pttdigest.ReportWriter, progress ProgressFunc) (*Result, error) {
	if pages <= 0 {
		return nil, pttdigest.Errorf(pttdigest.EINVALID, "page count must be greater than 0")
	}

	result := &Result{}
	err := c.stage(ctx, user, pages, result, progress)
	if err == nil {
		err = c.aggregate(ctx, pages, report, result, progress)
	}

	if !c.KeepStaged {
		c.cleanup(ctx, pages, result, progress)
	}

	return result, err
}

// Stage downloads each listing page into the stager. Failed downloads are
// reported and skipped. Only context cancellation stops the loop early.
func (c *Crawler) Stage(ctx context.Context, user string, pages int, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	err := c.stage(ctx, user, pages, result, progress)
	return result, err
}

func (c *Crawler) stage(ctx context.Context, user string, pages int, result *Result, progress ProgressFunc) error {
	for page := 0; page < pages; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		listingURL := c.Source.ListingURL(user, page)
		n, err := c.stagePage(ctx, page, listingURL)
		if err != nil {
			result.FetchFailed++
			progress.emit(ProgressEvent{Type: ProgressFetchFailed, Page: page, Total: pages, URL: listingURL, Error: err})
			continue
		}

		result.Staged++
		progress.emit(ProgressEvent{Type: ProgressFetched, Page: page, Total: pages, URL: listingURL, Bytes: n})
	}
	return nil
}

func (c *Crawler) stagePage(ctx context.Context, page int, listingURL string) (int, error) {
	if c.RateLimiter != nil {
		u, err := url.Parse(listingURL)
		if err != nil {
			return 0, fmt.Errorf("parsing listing URL: %w", err)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return 0, err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return 0, err
	}

	if err := c.Stager.Save(ctx, page, html); err != nil {
		return 0, fmt.Errorf("staging page %d: %w", page, err)
	}
	return len(html), nil
}

// Aggregate extracts the entries of every staged page in [0, pages) and
// writes them to report in page order. Pages that were never staged are
// skipped silently. Pages that fail to load or parse are reported and
// skipped. A report write error aborts aggregation.
func (c *Crawler) Aggregate(ctx context.Context, pages int, report pttdigest.ReportWriter, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	err := c.aggregate(ctx, pages, report, result, progress)
	return result, err
}

func (c *Crawler) aggregate(ctx context.Context, pages int, report pttdigest.ReportWriter, result *Result, progress ProgressFunc) error {
	for page := 0; page < pages; page++ {
		html, err := c.Stager.Load(ctx, page)
		if pttdigest.ErrorCode(err) == pttdigest.ENOTFOUND {
			continue
		} else if err != nil {
			result.ParseFailed++
			progress.emit(ProgressEvent{Type: ProgressParseFailed, Page: page, Total: pages, Error: err})
			continue
		}

		entries, err := c.Extractor.Extract(html)
		if err != nil {
			result.ParseFailed++
			progress.emit(ProgressEvent{Type: ProgressParseFailed, Page: page, Total: pages, Error: err})
			continue
		}

		if err := report.Write(entries); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		result.Parsed++
		result.Entries += len(entries)
		progress.emit(ProgressEvent{Type: ProgressParsed, Page: page, Total: pages})
	}
	return nil
}

// Cleanup removes every staged page in [0, pages). Pages that were never
// staged are ignored. Removal failures are reported and do not stop the
// sweep.
func (c *Crawler) Cleanup(ctx context.Context, pages int, progress ProgressFunc) *Result {
	result := &Result{}
	c.cleanup(ctx, pages, result, progress)
	return result
}

func (c *Crawler) cleanup(ctx context.Context, pages int, result *Result, progress ProgressFunc) {
	for page := 0; page < pages; page++ {
		err := c.Stager.Remove(ctx, page)
		if pttdigest.ErrorCode(err) == pttdigest.ENOTFOUND {
			continue
		} else if err != nil {
			result.RemoveFailed++
			progress.emit(ProgressEvent{Type: ProgressRemoveFailed, Page: page, Total: pages, Error: err})
			continue
		}
		result.Removed++
		progress.emit(ProgressEvent{Type: ProgressRemoved, Page: page, Total: pages})
	}
}
