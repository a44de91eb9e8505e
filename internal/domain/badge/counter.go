// Package badge extracts unread counters from page titles.
package badge

import "regexp"

// counterPattern finds the first count wrapped in (), [] or {}, optionally
// followed by "+", e.g. "Inbox (42)" or "Updates [99+]". Capture group 1 holds
// the digits and may be empty ("Inbox ()").
var counterPattern = regexp.MustCompile(`[(\[{](\d*?)\+?[}\])]`)

// ParseCounter returns the counter found in title and whether one matched.
// A match with no digits yields ("", true) so callers clear the badge.
func ParseCounter(title string) (string, bool) {
	match := counterPattern.FindStringSubmatch(title)
	if match == nil {
		return "", false
	}
	return match[1], true
}
