package catalog

import (
	"strings"

	"github.com/tripdeck/backend/internal/domain"
)

// Classifier resolves a raw free-text destination string into a stable
// DestinationIdentity: domestic/international type, region, slugs, and the
// grouping key the aggregator folds on.
type Classifier struct {
	vocab Vocabulary
}

// NewClassifier constructs a Classifier over the given vocabulary.
// Use DefaultVocabulary() in production; tests may pass alternate tables.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{vocab: vocab}
}

// Classify derives the identity for one raw destination string.
// It is a pure function of raw: equal input always yields an identical
// identity, and the key is non-empty whenever raw contains slug-able text.
func (c *Classifier) Classify(raw string) domain.DestinationIdentity {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DestinationIdentity{Type: domain.DestinationUnknown}
	}

	var name, country string
	segments := splitSegments(raw)
	if len(segments) > 0 {
		name = segments[0]
	}
	if len(segments) > 1 {
		country = segments[len(segments)-1]
	}

	id := domain.DestinationIdentity{Name: name}

	if c.isDomestic(raw) {
		id.Type = domain.DestinationDomestic
		id.Country = c.vocab.HomeCountry
		id.Region = c.vocab.HomeCountry
	} else {
		id.Type = domain.DestinationInternational
		id.Country = country
		if id.Country == "" {
			// Single-segment international input ("France") — the whole
			// string is the best country candidate available.
			id.Country = raw
		}
		id.Region = c.regionFor(id.Country)
	}

	id.NameSlug = Slugify(id.Name)
	id.CountrySlug = Slugify(id.Country)
	id.Key = groupingKey(id, raw)
	return id
}

// isDomestic reports whether any domestic keyword occurs anywhere in the raw
// string, case-insensitively. First match wins; the substring false-positive
// behavior is documented on Vocabulary.DomesticKeywords.
func (c *Classifier) isDomestic(raw string) bool {
	lower := strings.ToLower(raw)
	for _, kw := range c.vocab.DomesticKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// regionFor looks the country up in the region table (case-insensitive exact
// match), falling back to the global sentinel region.
func (c *Classifier) regionFor(country string) string {
	if region, ok := c.vocab.RegionByCountry[strings.ToLower(strings.TrimSpace(country))]; ok {
		return region
	}
	return c.vocab.GlobalRegion
}

// splitSegments splits raw on commas, trims each piece, and drops empties.
func splitSegments(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// groupingKey picks the stable grouping token: domestic destinations group
// by name, international ones by country (else name), and anything still
// empty falls back to the slug of the whole raw string.
func groupingKey(id domain.DestinationIdentity, raw string) string {
	key := id.NameSlug
	if id.Type == domain.DestinationInternational {
		key = id.CountrySlug
		if key == "" {
			key = id.NameSlug
		}
	}
	if key == "" {
		key = Slugify(raw)
	}
	return key
}
