package mock

import "github.com/fwojciec/pttdigest"

var _ pttdigest.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of pttdigest.ReportWriter.
type ReportWriter struct {
	WriteFn func(entries []*pttdigest.Entry) error
}

func (w *ReportWriter) Write(entries []*pttdigest.Entry) error {
	return w.WriteFn(entries)
}
