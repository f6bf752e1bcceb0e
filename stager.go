package pttdigest

import "context"

// Stager holds raw listing HTML between download and aggregation.
// Pages are addressed by their zero-based index within one run.
type Stager interface {
	// Save stores the HTML of a page, replacing any previous content.
	Save(ctx context.Context, page int, html string) error

	// Load returns the stored HTML of a page.
	// Returns ENOTFOUND if the page was never staged.
	Load(ctx context.Context, page int) (string, error)

	// Remove deletes a staged page.
	// Returns ENOTFOUND if the page was never staged.
	Remove(ctx context.Context, page int) error
}
