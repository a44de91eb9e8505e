// Package url provides URL classification and manipulation for the shell.
package url

import (
	"net/url"
	"strings"
)

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Already has scheme
	switch {
	case strings.HasPrefix(input, "http://"):
		return input
	case strings.HasPrefix(input, "https://"):
		return input
	case strings.HasPrefix(input, "file://"):
		return input
	case strings.HasPrefix(input, "about:"):
		return input
	case strings.HasPrefix(input, "mailto:"):
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") && !strings.HasPrefix(input, ".") {
		return "https://" + input
	}

	return input
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so example.com and www.example.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return canonicalHost(parsed.Hostname())
}

// canonicalHost lower-cases a host and strips a trailing dot and "www.".
func canonicalHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	return strings.TrimPrefix(host, "www.")
}
