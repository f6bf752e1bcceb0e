package pttdigest

import (
	"io"
	"strings"
)

// FormatEntry renders one entry as a report block: the title line, the URL
// line, one line per comment, and a blank separator line. Empty fields
// still produce their (empty) line.
func FormatEntry(e *Entry) string {
	var b strings.Builder
	b.WriteString(e.Title)
	b.WriteString("\n")
	b.WriteString(e.URL)
	b.WriteString("\n")
	for _, c := range e.Comments {
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// WriteEntries appends the blocks of entries to w in order.
func WriteEntries(w io.Writer, entries []*Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes every page's entries to w, in page order and then
// document order. A write error leaves w holding whatever was written so far.
func WriteReport(w io.Writer, pages [][]*Entry) error {
	for _, entries := range pages {
		if err := WriteEntries(w, entries); err != nil {
			return err
		}
	}
	return nil
}

// ReportWriter receives the entries of each page, in page order.
type ReportWriter interface {
	Write(entries []*Entry) error
}
