package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/pttdigest"
	"github.com/fwojciec/pttdigest/crawl"
)

// Run executes the digest command.
func (c *DigestCmd) Run(deps *Dependencies) error {
	if err := deps.Report.Create(); err != nil {
		fmt.Fprintf(deps.Stderr, "error creating report: %v\n", err)
		return err
	}

	progress := func(e crawl.ProgressEvent) {
		name := filepath.Base(deps.Stager.Path(e.Page))
		switch e.Type {
		case crawl.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "downloaded %s (%s)\n", name, crawl.FormatBytes(e.Bytes))
		case crawl.ProgressFetchFailed:
			fmt.Fprintf(deps.Stderr, "failed to download page %d (%s): %v\n", e.Page, crawl.TruncateURL(e.URL, 60), e.Error)
		case crawl.ProgressParseFailed:
			fmt.Fprintf(deps.Stderr, "failed to parse page %d: %s\n", e.Page, errorText(e.Error))
		case crawl.ProgressRemoved:
			fmt.Fprintf(deps.Stdout, "removed %s\n", name)
		case crawl.ProgressRemoveFailed:
			fmt.Fprintf(deps.Stderr, "failed to remove %s: %v\n", name, e.Error)
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, c.User, c.Pages, deps.Report, progress)
	if closeErr := deps.Report.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Collected %d entries from %d of %d pages\n", result.Entries, result.Parsed, c.Pages)

	path, absErr := filepath.Abs(deps.Report.Path())
	if absErr != nil {
		path = deps.Report.Path()
	}
	fmt.Fprintf(deps.Stdout, "Report saved to %s\n", path)
	return nil
}

// errorText prefers the message of application errors.
func errorText(err error) string {
	if pttdigest.ErrorCode(err) == pttdigest.EINTERNAL {
		return err.Error()
	}
	return pttdigest.ErrorMessage(err)
}
