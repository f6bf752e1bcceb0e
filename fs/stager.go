// Package fs provides file-based staging and report storage.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/pttdigest"
)

// Ensure Stager implements pttdigest.Stager at compile time.
var _ pttdigest.Stager = (*Stager)(nil)

// Stager keeps each downloaded page in its own file named after the user
// and the page index, e.g. "alice0.txt", "alice1.txt".
type Stager struct {
	dir  string
	user string
}

// NewStager creates a Stager writing into dir for the given user.
func NewStager(dir, user string) *Stager {
	return &Stager{dir: dir, user: user}
}

// Path returns the staging file path of a page.
func (s *Stager) Path(page int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d.txt", s.user, page))
}

func (s *Stager) Save(ctx context.Context, page int, html string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.Path(page), []byte(html), 0644)
}

func (s *Stager) Load(ctx context.Context, page int) (string, error) {
	b, err := os.ReadFile(s.Path(page))
	if errors.Is(err, fs.ErrNotExist) {
		return "", pttdigest.Errorf(pttdigest.ENOTFOUND, "page %d not staged", page)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Stager) Remove(ctx context.Context, page int) error {
	err := os.Remove(s.Path(page))
	if errors.Is(err, fs.ErrNotExist) {
		return pttdigest.Errorf(pttdigest.ENOTFOUND, "page %d not staged", page)
	}
	return err
}
