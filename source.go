package pttdigest

import (
	"fmt"
	"net/url"
	"strings"
)

// Default source values.
const (
	DefaultOrigin     = "https://www.pttweb.cc"
	DefaultBoard      = "hatepolitics"
	DefaultLinkOrigin = "https://www.ptt.cc"
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"
)

// Source describes where listings are fetched from and how thread links
// found in them are turned into absolute URLs.
type Source struct {
	// Origin is the scheme and host serving user listings.
	Origin string

	// Board is the board segment of the listing path.
	Board string

	// LinkOrigin is prefixed to root-relative thread links.
	LinkOrigin string

	// UserAgent is sent with every listing request.
	UserAgent string
}

// DefaultSource returns the pttweb.cc configuration.
func DefaultSource() Source {
	return Source{
		Origin:     DefaultOrigin,
		Board:      DefaultBoard,
		LinkOrigin: DefaultLinkOrigin,
		UserAgent:  DefaultUserAgent,
	}
}

// ListingURL returns the URL of the zero-based page of a user's messages.
func (s Source) ListingURL(user string, page int) string {
	return fmt.Sprintf("%s/user/%s/%s?t=message&page=%d",
		strings.TrimRight(s.Origin, "/"), url.PathEscape(user), s.Board, page)
}

// ThreadURL rewrites a root-relative thread link into an absolute URL:
// trailing slashes are dropped and ".html" is appended.
//
// Links that already carry an extension, or are empty, come out malformed
// (e.g. "/a.html" becomes "/a.html.html"). That matches the upstream
// tooling and is left as is.
func (s Source) ThreadURL(href string) string {
	return s.LinkOrigin + strings.TrimRight(href, "/") + ".html"
}

// Validate returns an error if the source is missing a required field.
func (s Source) Validate() error {
	if s.Origin == "" {
		return Errorf(EINVALID, "source origin required")
	}
	if s.Board == "" {
		return Errorf(EINVALID, "source board required")
	}
	return nil
}
