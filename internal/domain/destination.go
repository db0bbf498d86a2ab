package domain

// DestinationType classifies a destination relative to the home market.
type DestinationType string

const (
	// DestinationDomestic is a destination inside the home market.
	DestinationDomestic DestinationType = "domestic"
	// DestinationInternational is a destination outside the home market.
	DestinationInternational DestinationType = "international"
	// DestinationUnknown is the classification of an empty destination string.
	DestinationUnknown DestinationType = "unknown"
)

// DestinationIdentity is the stable identity derived from a raw free-text
// destination string. It is never stored independently — it is recomputed
// from the raw string on every normalization, and recomputing it from equal
// input always yields an identical value.
type DestinationIdentity struct {
	// Name is the first comma-delimited segment of the raw string, trimmed.
	Name string `json:"name"`
	// Country is the last comma-delimited segment when more than one exists.
	// For domestic destinations it is forced to the home-country label.
	Country string `json:"country"`
	// Type is domestic, international, or unknown (empty input).
	Type DestinationType `json:"type"`
	// Region is a continent-like grouping, or "Global" when unmapped.
	// For domestic destinations region equals country.
	Region string `json:"region"`
	// NameSlug and CountrySlug are the slug forms of Name and Country.
	NameSlug    string `json:"name_slug"`
	CountrySlug string `json:"country_slug"`
	// Key is the grouping identity: domestic destinations group by NameSlug,
	// international ones by CountrySlug (falling back to NameSlug), with a
	// final fallback to the slug of the whole raw string. Key is non-empty
	// whenever the raw string is non-empty.
	Key string `json:"key"`
}

// Destination is the per-destination aggregate folded from all Packages
// sharing one identity Key. It is rebuilt from scratch on every aggregation
// run; there is no incremental update path.
type Destination struct {
	DestinationIdentity

	// Packages holds the member packages in input order.
	Packages []Package `json:"packages"`

	// MinPrice is the lowest PriceFrom across members, 0 with no members.
	MinPrice float64 `json:"min_price"`
	// MinDuration and MaxDuration bound the members' DurationDays.
	MinDuration int `json:"min_duration"`
	MaxDuration int `json:"max_duration"`
	// AverageRating is the mean member rating, rounded to one decimal.
	AverageRating float64 `json:"average_rating"`
	// ReviewsCount is the sum of member review counts.
	ReviewsCount int `json:"reviews_count"`
	// PackagesCount always equals len(Packages).
	PackagesCount int `json:"packages_count"`
	// Activities is the union of member activity tags, in first-seen order.
	Activities []string `json:"activities"`

	// ImageURL and Description come from the first member that supplies a
	// non-empty value, so they depend on package input order. That order
	// sensitivity is deliberate; see catalog.FirstNonEmpty.
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`

	// DurationLabel is a display string like "3-5D" or "4D/3N";
	// empty when MinDuration is 0.
	DurationLabel string `json:"duration_label"`
}
