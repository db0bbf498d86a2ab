package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/backend/internal/catalog"
	"github.com/tripdeck/backend/internal/domain"
)

func rawFixture() domain.RawPackage {
	return domain.RawPackage{
		ID:           "pkg-1",
		Title:        "Goa Beach Escape",
		Destination:  "Goa, India",
		Description:  "Four days of beach and nightlife.",
		DurationDays: 4,
		PriceFrom:    15999,
		Rating:       4.6,
		ReviewsCount: 212,
		Highlights:   []string{"Private beach access"},
		Inclusions:   []string{"Breakfast", "Airport transfers"},
		Images:       []string{"https://img.example/goa-1.jpg", "https://img.example/goa-2.jpg"},
		Status:       "active",
	}
}

func TestNormalize_fullRecord(t *testing.T) {
	pkg := catalog.NewDefaultNormalizer().Normalize(rawFixture())

	assert.Equal(t, "pkg-1", pkg.ID)
	assert.Equal(t, "goa-beach-escape", pkg.Slug, "slug derived from title when absent")
	assert.Equal(t, "Goa Beach Escape", pkg.Title)
	assert.Equal(t, domain.DestinationDomestic, pkg.Destination.Type)
	assert.Equal(t, "goa", pkg.Destination.Key)
	assert.Equal(t, 4, pkg.DurationDays)
	assert.Equal(t, 15999.0, pkg.PriceFrom)
	assert.Contains(t, pkg.Activities, "Beach")
	assert.Contains(t, pkg.Activities, "Nightlife")
	assert.Equal(t, "https://img.example/goa-1.jpg", pkg.CoverImage, "first list image when no explicit cover")
	require.NotNil(t, pkg.Raw)
	assert.Equal(t, "active", pkg.Raw.Status)
}

func TestNormalize_explicitFieldsWin(t *testing.T) {
	raw := rawFixture()
	raw.Slug = "custom-slug"
	raw.CoverImage = "https://img.example/cover.jpg"

	pkg := catalog.NewDefaultNormalizer().Normalize(raw)

	assert.Equal(t, "custom-slug", pkg.Slug)
	assert.Equal(t, "https://img.example/cover.jpg", pkg.CoverImage)
}

// TestNormalize_emptyRecord verifies the normalizer is total: a zero-value
// raw record produces a consistent, empty-but-valid Package, never a panic.
func TestNormalize_emptyRecord(t *testing.T) {
	pkg := catalog.NewDefaultNormalizer().Normalize(domain.RawPackage{})

	assert.Empty(t, pkg.Slug)
	assert.Equal(t, domain.DestinationUnknown, pkg.Destination.Type)
	assert.Zero(t, pkg.DurationDays)
	assert.Zero(t, pkg.PriceFrom)
	assert.Zero(t, pkg.Rating)
	assert.Zero(t, pkg.ReviewsCount)
	assert.NotNil(t, pkg.Highlights)
	assert.Empty(t, pkg.Highlights)
	assert.NotNil(t, pkg.Inclusions)
	assert.NotNil(t, pkg.Exclusions)
	assert.NotNil(t, pkg.Activities)
	assert.Empty(t, pkg.CoverImage)
	assert.Empty(t, pkg.Itinerary)
}

func TestNormalize_clampsOutOfRangeNumerics(t *testing.T) {
	raw := domain.RawPackage{
		DurationDays: -2,
		PriceFrom:    -100,
		Rating:       7.5,
		ReviewsCount: -3,
	}

	pkg := catalog.NewDefaultNormalizer().Normalize(raw)

	assert.Zero(t, pkg.DurationDays)
	assert.Zero(t, pkg.PriceFrom)
	assert.Equal(t, 5.0, pkg.Rating)
	assert.Zero(t, pkg.ReviewsCount)
}

// TestNormalize_itinerarySorted verifies days sort ascending and a missing
// day number is treated as day 0, sorting first.
func TestNormalize_itinerarySorted(t *testing.T) {
	raw := domain.RawPackage{
		Itinerary: []domain.RawItineraryDay{
			{Day: 3, Title: "Departure"},
			{Day: 1, Title: "Arrival"},
			{Title: "Orientation"}, // no day number
			{Day: 2, Title: "City tour"},
		},
	}

	pkg := catalog.NewDefaultNormalizer().Normalize(raw)

	require.Len(t, pkg.Itinerary, 4)
	assert.Equal(t, "Orientation", pkg.Itinerary[0].Title, "day 0 sorts first")
	assert.Equal(t, "Arrival", pkg.Itinerary[1].Title)
	assert.Equal(t, "City tour", pkg.Itinerary[2].Title)
	assert.Equal(t, "Departure", pkg.Itinerary[3].Title)
}

// TestNormalize_deterministic verifies identical input yields deep-equal
// output across calls.
func TestNormalize_deterministic(t *testing.T) {
	n := catalog.NewDefaultNormalizer()
	raw := rawFixture()

	first := n.Normalize(raw)
	second := n.Normalize(raw)

	assert.Equal(t, first, second)
}
