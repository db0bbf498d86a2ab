package catalog

import (
	"sort"

	"github.com/tripdeck/backend/internal/domain"
)

// Normalizer maps one raw backend record into a canonical domain.Package.
// It never fails: every field has a default when absent, and malformed
// numerics resolve to zero rather than an error. Garbage in produces an
// internally consistent (if semantically empty) Package out.
type Normalizer struct {
	classifier *Classifier
	extractor  *Extractor
}

// NewNormalizer constructs a Normalizer from its two classification parts.
func NewNormalizer(classifier *Classifier, extractor *Extractor) *Normalizer {
	return &Normalizer{classifier: classifier, extractor: extractor}
}

// NewDefaultNormalizer constructs a Normalizer over the production
// vocabulary and tag rules.
func NewDefaultNormalizer() *Normalizer {
	return NewNormalizer(
		NewClassifier(DefaultVocabulary()),
		NewExtractor(DefaultTagRules()),
	)
}

// Normalize converts raw into an immutable Package. The original record is
// kept reachable via Package.Raw for fields the UI passes through verbatim.
func (n *Normalizer) Normalize(raw domain.RawPackage) domain.Package {
	rawCopy := raw

	slug := raw.Slug
	if slug == "" {
		slug = Slugify(raw.Title)
	}

	pkg := domain.Package{
		ID:           raw.ID,
		Slug:         slug,
		Title:        raw.Title,
		Destination:  n.classifier.Classify(raw.Destination),
		DurationDays: clampInt(raw.DurationDays),
		PriceFrom:    clampFloat(raw.PriceFrom),
		Rating:       clampRating(raw.Rating),
		ReviewsCount: clampInt(raw.ReviewsCount),
		Highlights:   orEmpty(raw.Highlights),
		Inclusions:   orEmpty(raw.Inclusions),
		Exclusions:   orEmpty(raw.Exclusions),
		Activities:   n.extractor.Extract(raw.Highlights, raw.Inclusions, raw.Description),
		CoverImage:   coverImage(raw),
		Itinerary:    normalizeItinerary(raw.Itinerary),
		Raw:          &rawCopy,
	}
	return pkg
}

// coverImage picks the explicit cover image, else the first list image,
// else the empty string.
func coverImage(raw domain.RawPackage) string {
	if raw.CoverImage != "" {
		return raw.CoverImage
	}
	if len(raw.Images) > 0 {
		return raw.Images[0]
	}
	return ""
}

// normalizeItinerary copies the day entries and sorts them ascending by day
// number. A missing or zero upstream day number stays day 0 and sorts first;
// the sort is stable so same-day entries keep their upstream order.
func normalizeItinerary(raw []domain.RawItineraryDay) []domain.ItineraryDay {
	days := make([]domain.ItineraryDay, len(raw))
	for i, d := range raw {
		days[i] = domain.ItineraryDay{
			Day:         clampInt(d.Day),
			Title:       d.Title,
			Description: d.Description,
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days
}

// orEmpty turns a nil list into an empty one so callers (and JSON output)
// never see null where a list belongs.
func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clampRating bounds a rating to [0, 5] so aggregate averages stay in range
// even when upstream ships out-of-scale values.
func clampRating(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 5:
		return 5
	default:
		return v
	}
}
