// Package catalog implements the destination classification and aggregation
// engine for the Tripdeck storefront: slug normalization, domestic vs.
// international classification, activity tag extraction, raw-record
// normalization, and the per-destination aggregate fold. Every function in
// this package is pure and synchronous — no I/O, no shared mutable state —
// so the engine is safe to call repeatedly or in parallel across independent
// input batches.
package catalog

import (
	"fmt"
	"math"

	"github.com/tripdeck/backend/internal/domain"
)

// DisplayPolicy decides which value wins for an aggregate display field
// (image URL, description) as members join. It receives the current value
// and the joining package's candidate and returns the value to keep.
type DisplayPolicy func(current, candidate string) string

// FirstNonEmpty keeps the first non-empty value seen. Under this policy the
// aggregate's display fields depend on package input order: reordering the
// input list can change which member's image or description is shown. That
// is deliberate — a single aggregation run must not be parallelized in a way
// that loses input order.
func FirstNonEmpty(current, candidate string) string {
	if current != "" {
		return current
	}
	return candidate
}

// Aggregator folds normalized packages into per-destination aggregates.
type Aggregator struct {
	display DisplayPolicy
}

// NewAggregator constructs an Aggregator with the given display tie-break
// policy. A nil policy defaults to FirstNonEmpty.
func NewAggregator(policy DisplayPolicy) *Aggregator {
	if policy == nil {
		policy = FirstNonEmpty
	}
	return &Aggregator{display: policy}
}

// destAccum accumulates one destination while folding. The min fields are
// pointers rather than +Inf sentinels so "no value yet" can never leak into
// arithmetic or serialized output.
type destAccum struct {
	identity    domain.DestinationIdentity
	members     []domain.Package
	minPrice    *float64
	minDuration *int
	maxDuration int
	ratingSum   float64
	reviewsSum  int
	tags        []string
	tagSeen     map[string]bool
	imageURL    string
	description string
}

// Aggregate groups packages by destination key, in input order, and folds
// each group into a Destination. Results come back in first-seen-key order;
// sorting and filtering are caller concerns. An empty input yields an empty
// (non-nil) slice.
func (a *Aggregator) Aggregate(pkgs []domain.Package) []domain.Destination {
	accums := make(map[string]*destAccum)
	var order []string

	for _, pkg := range pkgs {
		key := pkg.Destination.Key
		acc, ok := accums[key]
		if !ok {
			acc = &destAccum{
				identity: pkg.Destination,
				tagSeen:  make(map[string]bool),
			}
			accums[key] = acc
			order = append(order, key)
		}
		a.fold(acc, pkg)
	}

	out := make([]domain.Destination, 0, len(order))
	for _, key := range order {
		out = append(out, finalize(accums[key]))
	}
	return out
}

// fold joins one package into an accumulator.
func (a *Aggregator) fold(acc *destAccum, pkg domain.Package) {
	acc.members = append(acc.members, pkg)

	if acc.minPrice == nil || pkg.PriceFrom < *acc.minPrice {
		price := pkg.PriceFrom
		acc.minPrice = &price
	}
	if acc.minDuration == nil || pkg.DurationDays < *acc.minDuration {
		days := pkg.DurationDays
		acc.minDuration = &days
	}
	if pkg.DurationDays > acc.maxDuration {
		acc.maxDuration = pkg.DurationDays
	}

	acc.ratingSum += pkg.Rating
	acc.reviewsSum += pkg.ReviewsCount

	for _, tag := range pkg.Activities {
		if !acc.tagSeen[tag] {
			acc.tagSeen[tag] = true
			acc.tags = append(acc.tags, tag)
		}
	}

	acc.imageURL = a.display(acc.imageURL, pkg.CoverImage)
	acc.description = a.display(acc.description, rawDescription(pkg))
}

// rawDescription reads the pass-through description, tolerating packages
// built without a raw record (hand-rolled fixtures).
func rawDescription(pkg domain.Package) string {
	if pkg.Raw == nil {
		return ""
	}
	return pkg.Raw.Description
}

// finalize resolves the accumulator into a Destination: unset minima become
// zero, the average rating is rounded to one decimal, and the duration label
// is rendered for display.
func finalize(acc *destAccum) domain.Destination {
	d := domain.Destination{
		DestinationIdentity: acc.identity,
		Packages:            acc.members,
		MaxDuration:         acc.maxDuration,
		ReviewsCount:        acc.reviewsSum,
		PackagesCount:       len(acc.members),
		Activities:          acc.tags,
		ImageURL:            acc.imageURL,
		Description:         acc.description,
	}
	if d.Activities == nil {
		d.Activities = []string{}
	}
	if acc.minPrice != nil {
		d.MinPrice = *acc.minPrice
	}
	if acc.minDuration != nil {
		d.MinDuration = *acc.minDuration
	}
	if d.PackagesCount > 0 {
		d.AverageRating = round1(acc.ratingSum / float64(d.PackagesCount))
	}
	d.DurationLabel = durationLabel(d.MinDuration, d.MaxDuration)
	return d
}

// durationLabel renders the duration range for listing surfaces:
// empty when min is zero, "3-5D" for a real range, and the nights-derived
// "4D/3N" form when all members share one duration.
func durationLabel(min, max int) string {
	if min == 0 {
		return ""
	}
	if max != min && max != 0 {
		return fmt.Sprintf("%d-%dD", min, max)
	}
	nights := min - 1
	if nights < 1 {
		nights = 1
	}
	return fmt.Sprintf("%dD/%dN", min, nights)
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
