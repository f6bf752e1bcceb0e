package pttdigest

// Entry is one thread reference extracted from a listing page.
type Entry struct {
	Title string
	URL   string // Empty when the item has no link.

	// Comments holds one summary per comment block, in document order.
	// A block with no recognized fields contributes an empty string.
	Comments []string
}

// Markers names the CSS classes that identify the parts of a listing page.
// The upstream markup is the only source of these names, so they are
// configuration rather than literals inside the extractor.
type Markers struct {
	ThreadItem   string
	ThreadTitle  string
	CommentBlock string
	Floor        string
	Arrow        string
	Author       string
	Content      string
	IPTime       string
}

// DefaultMarkers returns the class names used by pttweb.cc user listings.
func DefaultMarkers() Markers {
	return Markers{
		ThreadItem:   "thread-item",
		ThreadTitle:  "thread-title",
		CommentBlock: "e7-top",
		Floor:        "e7-floor",
		Arrow:        "f11",
		Author:       "e7-author",
		Content:      "yellow--text",
		IPTime:       "grey--text",
	}
}

// Extractor turns one listing page into entries.
type Extractor interface {
	// Extract parses raw HTML and returns the thread entries in document
	// order. A page without thread items yields an empty slice, not an error.
	// Returns EPARSE if the document itself cannot be parsed.
	Extract(html string) ([]*Entry, error)
}
