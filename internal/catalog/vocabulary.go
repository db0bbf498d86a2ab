package catalog

import "regexp"

// Vocabulary is the classification data the engine runs on: the home-country
// label, the domestic keyword list, and the country→region table. It is an
// immutable value injected into NewClassifier, never package-level mutable
// state, so tests can run the classifier against alternate vocabularies.
type Vocabulary struct {
	// HomeCountry is the label forced onto country and region for domestic
	// destinations (region == country in the home market).
	HomeCountry string

	// DomesticKeywords are matched case-insensitively as raw substrings
	// against the entire destination string. Entries must be lowercase.
	//
	// Substring matching is deliberate and known to be imprecise: a foreign
	// place name that happens to contain one of these keywords classifies
	// as domestic. Callers filtering on classification precision should
	// treat this as a data-quality limitation, not adjust the matcher.
	DomesticKeywords []string

	// RegionByCountry maps a lowercase country string to its region label.
	// Lookup is a case-insensitive exact match on the country segment;
	// unmapped countries fall back to GlobalRegion.
	RegionByCountry map[string]string

	// GlobalRegion is the sentinel region for unmapped countries.
	GlobalRegion string
}

// TagRule associates one activity tag with the pattern that triggers it.
// Rules are evaluated independently — they are not mutually exclusive.
type TagRule struct {
	Tag     string
	Pattern *regexp.Regexp
}

// DefaultVocabulary returns the production vocabulary for the India home
// market. The keyword and region tables are configuration, not logic: extend
// them freely without touching the classifier.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		HomeCountry: "India",
		DomesticKeywords: []string{
			"india",
			"goa", "kerala", "rajasthan", "himachal", "kashmir", "ladakh",
			"andaman", "uttarakhand", "sikkim", "meghalaya", "coorg",
			"delhi", "mumbai", "jaipur", "udaipur", "agra", "varanasi",
			"manali", "shimla", "rishikesh", "darjeeling", "ooty", "munnar",
		},
		RegionByCountry: map[string]string{
			"france": "Europe", "italy": "Europe", "switzerland": "Europe",
			"spain": "Europe", "greece": "Europe", "portugal": "Europe",
			"germany": "Europe", "netherlands": "Europe", "austria": "Europe",
			"united kingdom": "Europe", "uk": "Europe", "turkey": "Europe",

			"thailand": "Asia", "indonesia": "Asia", "singapore": "Asia",
			"malaysia": "Asia", "vietnam": "Asia", "japan": "Asia",
			"china": "Asia", "sri lanka": "Asia", "nepal": "Asia",
			"bhutan": "Asia", "maldives": "Asia", "cambodia": "Asia",
			"philippines": "Asia", "south korea": "Asia", "hong kong": "Asia",

			"uae": "Middle East", "united arab emirates": "Middle East",
			"qatar": "Middle East", "oman": "Middle East",
			"saudi arabia": "Middle East", "jordan": "Middle East",
			"israel": "Middle East",

			"egypt": "Africa", "south africa": "Africa", "kenya": "Africa",
			"tanzania": "Africa", "morocco": "Africa", "mauritius": "Africa",
			"seychelles": "Africa",

			"usa": "North America", "united states": "North America",
			"canada": "North America", "mexico": "North America",

			"brazil": "South America", "argentina": "South America",
			"peru": "South America", "chile": "South America",

			"australia": "Oceania", "new zealand": "Oceania", "fiji": "Oceania",
		},
		GlobalRegion: "Global",
	}
}

// DefaultTagRules returns the production activity tag rules, in evaluation
// order. Patterns are case-insensitive substring tests over the joined
// highlights + inclusions + description blob.
func DefaultTagRules() []TagRule {
	return []TagRule{
		{Tag: "Beach", Pattern: regexp.MustCompile(`(?i)beach|island|snorkel|scuba|water sport|cruise`)},
		{Tag: "Adventure", Pattern: regexp.MustCompile(`(?i)trek|hiking|hike|raft|paraglid|bungee|zipline|camping|adventure`)},
		{Tag: "Culture", Pattern: regexp.MustCompile(`(?i)temple|heritage|museum|fort|palace|monument|histor|culture`)},
		{Tag: "Romance", Pattern: regexp.MustCompile(`(?i)honeymoon|romantic|couple|candlelight`)},
		{Tag: "Wildlife", Pattern: regexp.MustCompile(`(?i)wildlife|safari|jungle|national park|tiger|elephant`)},
		{Tag: "Wellness", Pattern: regexp.MustCompile(`(?i)spa|yoga|ayurveda|wellness|meditation|retreat`)},
		{Tag: "Nightlife", Pattern: regexp.MustCompile(`(?i)nightlife|casino|club|party`)},
		{Tag: "Family", Pattern: regexp.MustCompile(`(?i)family|kids|children|theme park`)},
		{Tag: "Shopping", Pattern: regexp.MustCompile(`(?i)shopping|bazaar|souk|market`)},
		{Tag: "Food", Pattern: regexp.MustCompile(`(?i)culinary|cuisine|street food|food tour|wine`)},
	}
}
