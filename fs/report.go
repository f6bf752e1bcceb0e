package fs

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/fwojciec/pttdigest"
)

// Ensure Report implements pttdigest.ReportWriter at compile time.
var _ pttdigest.ReportWriter = (*Report)(nil)

// Report is the consolidated output file, "<user>.txt".
// It is created once, appended to page by page, and closed at the end.
// There is no recovery from a failed write; the file is left as written.
type Report struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// NewReport returns the report for user inside dir. Call Create before Write.
func NewReport(dir, user string) *Report {
	return &Report{path: filepath.Join(dir, user+".txt")}
}

// Path returns the report file path.
func (r *Report) Path() string {
	return r.path
}

// Create creates or truncates the report file.
func (r *Report) Create() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	f, err := os.Create(r.path)
	if err != nil {
		return err
	}
	r.file = f
	r.w = bufio.NewWriter(f)
	return nil
}

// Write appends the entries of one page.
func (r *Report) Write(entries []*pttdigest.Entry) error {
	if r.w == nil {
		return pttdigest.Errorf(pttdigest.EINTERNAL, "report %s not created", r.path)
	}
	return pttdigest.WriteEntries(r.w, entries)
}

// Close flushes buffered output and closes the file.
func (r *Report) Close() error {
	if r.file == nil {
		return nil
	}
	flushErr := r.w.Flush()
	closeErr := r.file.Close()
	r.file, r.w = nil, nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
