package catalog

import "strings"

// Extractor derives semantic activity tags from a package's free-text
// fields using an ordered list of independent keyword rules.
type Extractor struct {
	rules []TagRule
}

// NewExtractor constructs an Extractor over the given rules.
// Use DefaultTagRules() in production; tests may pass alternate rules.
func NewExtractor(rules []TagRule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract evaluates every rule against the concatenation of highlights,
// inclusions, and description. Fields are joined with newlines so a pattern
// cannot span two unrelated fields. The result is a duplicate-free tag set;
// it is emitted in rule order for determinism, but consumers treat it as a
// set — a package can carry zero, one, or many tags.
func (e *Extractor) Extract(highlights, inclusions []string, description string) []string {
	parts := make([]string, 0, len(highlights)+len(inclusions)+1)
	parts = append(parts, highlights...)
	parts = append(parts, inclusions...)
	parts = append(parts, description)
	blob := strings.Join(parts, "\n")

	tags := []string{}
	seen := make(map[string]bool, len(e.rules))
	for _, rule := range e.rules {
		if seen[rule.Tag] {
			continue
		}
		if rule.Pattern.MatchString(blob) {
			tags = append(tags, rule.Tag)
			seen[rule.Tag] = true
		}
	}
	return tags
}
