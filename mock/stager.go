package mock

import (
	"context"

	"github.com/fwojciec/pttdigest"
)

var _ pttdigest.Stager = (*Stager)(nil)

// Stager is a mock implementation of pttdigest.Stager.
type Stager struct {
	SaveFn   func(ctx context.Context, page int, html string) error
	LoadFn   func(ctx context.Context, page int) (string, error)
	RemoveFn func(ctx context.Context, page int) error
}

func (s *Stager) Save(ctx context.Context, page int, html string) error {
	return s.SaveFn(ctx, page, html)
}

func (s *Stager) Load(ctx context.Context, page int) (string, error) {
	return s.LoadFn(ctx, page)
}

func (s *Stager) Remove(ctx context.Context, page int) error {
	return s.RemoveFn(ctx, page)
}

// MemStager returns a Stager backed by an in-memory map, along with the
// map so tests can inspect what was staged.
func MemStager() (*Stager, map[int]string) {
	pages := make(map[int]string)
	return &Stager{
		SaveFn: func(_ context.Context, page int, html string) error {
			pages[page] = html
			return nil
		},
		LoadFn: func(_ context.Context, page int) (string, error) {
			html, ok := pages[page]
			if !ok {
				return "", pttdigest.Errorf(pttdigest.ENOTFOUND, "page %d not staged", page)
			}
			return html, nil
		},
		RemoveFn: func(_ context.Context, page int) error {
			if _, ok := pages[page]; !ok {
				return pttdigest.Errorf(pttdigest.ENOTFOUND, "page %d not staged", page)
			}
			delete(pages, page)
			return nil
		},
	}, pages
}
