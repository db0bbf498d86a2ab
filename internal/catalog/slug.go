package catalog

import (
	"regexp"
	"strings"
)

var (
	separatorRuns = regexp.MustCompile(`[\s_]+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns    = regexp.MustCompile(`-{2,}`)
)

// Slugify converts arbitrary text into a lowercase, hyphenated, URL-safe
// token: runs of whitespace and underscores become single hyphens, anything
// outside [a-z0-9-] is stripped, repeated hyphens collapse, and leading or
// trailing hyphens are trimmed.
//
// Slugify is total and idempotent: it never fails, empty or all-punctuation
// input yields "", and Slugify(Slugify(s)) == Slugify(s) for every s.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = separatorRuns.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
