package crawl

import "fmt"

const ellipsis = "..."

// TruncateURL shortens a listing URL to at most maxLen bytes for progress
// lines. The tail carries the user and page number, so the head is the
// part dropped.
func TruncateURL(url string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case len(url) <= maxLen:
		return url
	case maxLen <= len(ellipsis):
		return url[:maxLen]
	}
	keep := maxLen - len(ellipsis)
	return ellipsis + url[len(url)-keep:]
}

// FormatBytes renders a staged page size using binary units up to MB.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	size := float64(n) / 1024
	unit := "KB"
	if size >= 1024 {
		size /= 1024
		unit = "MB"
	}
	return fmt.Sprintf("%.1f %s", size, unit)
}
