// Package domain contains the core data types for the Tripdeck catalog.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (catalog, repo, client, service, handler).
package domain

import "time"

// RawPackage is one package record exactly as the upstream backend ships it.
// The shape is not controlled by this codebase: every field is optional and
// the JSON tags mirror the upstream API verbatim. Consumers must never read
// RawPackage fields directly — normalize first (catalog.Normalizer).
type RawPackage struct {
	ID           string            `json:"id,omitempty"`
	Slug         string            `json:"slug,omitempty"`
	Title        string            `json:"title,omitempty"`
	Destination  string            `json:"destination,omitempty"`
	Description  string            `json:"description,omitempty"`
	DurationDays int               `json:"duration_days,omitempty"`
	PriceFrom    float64           `json:"price_from,omitempty"`
	Rating       float64           `json:"rating,omitempty"`
	ReviewsCount int               `json:"reviews_count,omitempty"`
	Highlights   []string          `json:"highlights,omitempty"`
	Inclusions   []string          `json:"inclusions,omitempty"`
	Exclusions   []string          `json:"exclusions,omitempty"`
	Images       []string          `json:"images,omitempty"`
	CoverImage   string            `json:"cover_image,omitempty"`
	Itinerary    []RawItineraryDay `json:"itinerary,omitempty"`
	Category     string            `json:"category,omitempty"`
	Featured     bool              `json:"featured,omitempty"`
	Status       string            `json:"status,omitempty"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
}

// RawItineraryDay is one itinerary entry as the upstream backend ships it.
// Day may be missing or zero; the normalizer treats both as day 0.
type RawItineraryDay struct {
	Day         int    `json:"day,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Package is the canonical, normalized projection of a RawPackage.
// It is created once by catalog.Normalizer and never mutated afterwards;
// any "update" is a fresh normalization of new raw data.
type Package struct {
	ID           string              `json:"id"`
	Slug         string              `json:"slug"`
	Title        string              `json:"title"`
	Destination  DestinationIdentity `json:"destination"`
	DurationDays int                 `json:"duration_days"`
	PriceFrom    float64             `json:"price_from"`
	Rating       float64             `json:"rating"`
	ReviewsCount int                 `json:"reviews_count"`
	Highlights   []string            `json:"highlights"`
	Inclusions   []string            `json:"inclusions"`
	Exclusions   []string            `json:"exclusions"`
	Activities   []string            `json:"activities"`
	CoverImage   string              `json:"cover_image"`
	Itinerary    []ItineraryDay      `json:"itinerary"`

	// Raw points back to the record this Package was normalized from, for
	// pass-through fields the UI renders verbatim (category, featured, ...).
	Raw *RawPackage `json:"-"`
}

// ItineraryDay is one normalized itinerary entry.
// Entries are stored sorted ascending by Day; a missing upstream day number
// becomes Day 0 and therefore sorts first.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
