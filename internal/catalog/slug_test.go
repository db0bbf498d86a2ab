package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripdeck/backend/internal/catalog"
)

// TestSlugify_cases pins the full transform: lowercase, separator collapse,
// stripping, hyphen collapse, and edge trimming.
func TestSlugify_cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Goa", "goa"},
		{"spaces", "New   Delhi", "new-delhi"},
		{"underscores", "sri_lanka_tour", "sri-lanka-tour"},
		{"mixed separators", "Bali _ Indonesia", "bali-indonesia"},
		{"punctuation stripped", "Goa, India!", "goa-india"},
		{"diacritic-free only", "Café & Bar", "caf-bar"},
		{"leading trailing", "  --Paris--  ", "paris"},
		{"digits kept", "Top 10 Beaches", "top-10-beaches"},
		{"empty", "", ""},
		{"all punctuation", "!!!???", ""},
		{"only separators", " _ _ ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Slugify(tc.in))
		})
	}
}

// TestSlugify_idempotent verifies slugify(slugify(s)) == slugify(s) across
// a spread of awkward inputs.
func TestSlugify_idempotent(t *testing.T) {
	inputs := []string{
		"", "Goa", "Goa, India", "  PARIS,   France ", "a__b  c--d",
		"!!!", "-already-a-slug-", "Ooty & Munnar (Kerala)", "北京, China",
	}
	for _, in := range inputs {
		once := catalog.Slugify(in)
		assert.Equal(t, once, catalog.Slugify(once), "input %q", in)
	}
}
