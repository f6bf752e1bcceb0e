package mock

import "github.com/fwojciec/pttdigest"

var _ pttdigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pttdigest.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*pttdigest.Entry, error)
}

func (e *Extractor) Extract(html string) ([]*pttdigest.Entry, error) {
	return e.ExtractFn(html)
}
