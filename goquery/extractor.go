// Package goquery implements pttdigest.Extractor on top of goquery's
// CSS selection over the parsed HTML tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pttdigest"
)

// Ensure Extractor implements pttdigest.Extractor at compile time.
var _ pttdigest.Extractor = (*Extractor)(nil)

// Extractor pulls thread entries out of a user's message listing.
// Extractor holds no per-page state and is safe for concurrent use.
type Extractor struct {
	markers pttdigest.Markers
	source  pttdigest.Source
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarkers overrides the class names used to locate page parts.
func WithMarkers(m pttdigest.Markers) Option {
	return func(e *Extractor) {
		e.markers = m
	}
}

// WithSource sets the source used to build absolute thread URLs.
func WithSource(s pttdigest.Source) Option {
	return func(e *Extractor) {
		e.source = s
	}
}

// NewExtractor creates an Extractor using the default markers and source.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		markers: pttdigest.DefaultMarkers(),
		source:  pttdigest.DefaultSource(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns one entry per thread item, in document order.
func (e *Extractor) Extract(html string) ([]*pttdigest.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pttdigest.Errorf(pttdigest.EPARSE, "failed to parse HTML: %v", err)
	}

	entries := []*pttdigest.Entry{}
	doc.Find(class(e.markers.ThreadItem)).Each(func(_ int, item *goquery.Selection) {
		entries = append(entries, e.extractEntry(item))
	})
	return entries, nil
}

func (e *Extractor) extractEntry(item *goquery.Selection) *pttdigest.Entry {
	entry := &pttdigest.Entry{
		Comments: []string{},
	}

	if title := item.Find(class(e.markers.ThreadTitle)).First(); title.Length() > 0 {
		entry.Title = text(title)
	}

	if href, ok := item.Find("a[href]").First().Attr("href"); ok {
		entry.URL = e.source.ThreadURL(href)
	}

	item.Find(class(e.markers.CommentBlock)).Each(func(_ int, block *goquery.Selection) {
		entry.Comments = append(entry.Comments, e.summarizeComment(block))
	})

	return entry
}

// summarizeComment joins the fields present in a comment block, in the order
// floor, arrow, author, content, IP/time. Missing fields are skipped.
func (e *Extractor) summarizeComment(block *goquery.Selection) string {
	var parts []string

	if floor := block.Find(class(e.markers.Floor)).First(); floor.Length() > 0 {
		parts = append(parts, text(floor))
	}

	if arrow := block.Find(class(e.markers.Arrow)).First(); arrow.Length() > 0 {
		parts = append(parts, text(arrow))
	}

	if author := block.Find(class(e.markers.Author)).First(); author.Length() > 0 {
		parts = append(parts, text(author)+":")

		// Content is a later sibling of the author, not a descendant of it.
		if content := author.NextAllFiltered(class(e.markers.Content)).First(); content.Length() > 0 {
			parts = append(parts, strings.TrimSpace(strings.TrimLeft(text(content), ":")))
		}
	}

	if ipTime := block.Find(class(e.markers.IPTime)).First(); ipTime.Length() > 0 {
		parts = append(parts, text(ipTime))
	}

	return strings.Join(parts, " ")
}

// class returns a selector matching elements carrying the class name.
func class(name string) string {
	return "." + name
}

// text returns the selection's combined text with only the outer
// whitespace trimmed. Whitespace inside nested markup is kept, so
// "<span>: <a>x</a> more</span>" yields ": x more".
func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
