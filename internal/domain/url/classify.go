package url

import (
	"net"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/publicsuffix"
)

// Classification tells whether a URL belongs to the wrapped site.
// The zero value is External so an unset result never opens inside the shell.
type Classification int

const (
	// External URLs are handed to the system browser.
	External Classification = iota
	// Internal URLs stay inside the application.
	Internal
)

// String returns the classification name.
func (c Classification) String() string {
	if c == Internal {
		return "internal"
	}
	return "external"
}

// Classify decides whether candidateURL is part of the site rooted at baseURL.
//
// A candidate is internal when it is a relative or fragment reference, has the
// same host or registrable domain as the base, or matches one of patterns.
// A pattern is a literal host, a glob over the host ("*.example.org") or a
// glob over host and path ("example.org/app/**"). Unparseable candidates are
// external.
func Classify(baseURL, candidateURL string, patterns []string) Classification {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || base.Hostname() == "" {
		return External
	}

	candidate, ok := resolveCandidate(base, candidateURL)
	if !ok {
		return External
	}

	if candidate.Scheme == "about" && candidate.Opaque == "blank" {
		return Internal
	}
	if candidate.Scheme != "http" && candidate.Scheme != "https" {
		return External
	}

	host := canonicalHost(candidate.Hostname())
	if host == "" {
		return External
	}

	if sameSite(canonicalHost(base.Hostname()), host) {
		return Internal
	}
	if MatchesAny(patterns, host, candidate.EscapedPath()) {
		return Internal
	}
	return External
}

// resolveCandidate parses the candidate and resolves relative references
// against base. Scheme-less input only counts as a reference when it starts
// like one ("/", "./", "../", "?", "#") or its path has more than one segment
// ("inbox/3"); a bare word such as "page.html" is rejected.
func resolveCandidate(base *url.URL, raw string) (*url.URL, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return base, true
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if parsed.IsAbs() {
		return parsed, true
	}
	if !looksLikeReference(raw) {
		return nil, false
	}
	return base.ResolveReference(parsed), true
}

func looksLikeReference(raw string) bool {
	switch raw[0] {
	case '/', '?', '#':
		return true
	case '.':
		if strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../") || raw == "." || raw == ".." {
			return true
		}
	}
	path, _, _ := strings.Cut(raw, "#")
	path, _, _ = strings.Cut(path, "?")
	return strings.Contains(path, "/")
}

// sameSite compares two canonical hosts by exact value, then by eTLD+1.
// IP literals and single-label hosts only match exactly.
func sameSite(a, b string) bool {
	if a == b {
		return true
	}
	if net.ParseIP(a) != nil || net.ParseIP(b) != nil {
		return false
	}
	ra, err := publicsuffix.EffectiveTLDPlusOne(a)
	if err != nil {
		return false
	}
	rb, err := publicsuffix.EffectiveTLDPlusOne(b)
	if err != nil {
		return false
	}
	return ra == rb
}

// MatchesAny reports whether host (and path, for path patterns) matches any
// whitelist pattern. Invalid glob patterns never match.
func MatchesAny(patterns []string, host, path string) bool {
	host = canonicalHost(host)
	if path == "" {
		path = "/"
	}
	for _, raw := range patterns {
		pattern := NormalizePattern(raw)
		if pattern == "" {
			continue
		}
		if matchPattern(pattern, host, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, host, path string) bool {
	if strings.Contains(pattern, "/") {
		ok, err := doublestar.Match(pattern, host+path)
		return err == nil && ok
	}
	if strings.ContainsAny(pattern, "*?[{") {
		ok, err := doublestar.Match(pattern, host)
		return err == nil && ok
	}
	return canonicalHost(pattern) == host
}

// NormalizePattern lower-cases a whitelist entry and strips a leading scheme.
func NormalizePattern(pattern string) string {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if i := strings.Index(pattern, "://"); i >= 0 {
		pattern = pattern[i+3:]
	}
	return pattern
}

// ValidPattern reports whether a whitelist entry is usable.
func ValidPattern(pattern string) bool {
	p := NormalizePattern(pattern)
	return p != "" && doublestar.ValidatePattern(p)
}

// Classifier binds a base URL and whitelist for repeated classification.
type Classifier struct {
	baseURL  string
	patterns []string
}

// NewClassifier creates a classifier for the given target URL and whitelist.
func NewClassifier(baseURL string, patterns []string) *Classifier {
	return &Classifier{
		baseURL:  baseURL,
		patterns: append([]string(nil), patterns...),
	}
}

// Classify classifies candidate against the bound base URL.
// A nil classifier treats everything as external.
func (c *Classifier) Classify(candidate string) Classification {
	if c == nil {
		return External
	}
	return Classify(c.baseURL, candidate, c.patterns)
}

// IsInternal reports whether candidate stays inside the application.
func (c *Classifier) IsInternal(candidate string) bool {
	return c.Classify(candidate) == Internal
}
