package domain

// ListParams carries the filter values a package source understands.
// Both the Postgres repo and the upstream HTTP client accept the same
// params, so the service layer is source-agnostic.
type ListParams struct {
	// Limit caps the number of records returned. 0 means no cap
	// (the source's own default applies). Capped at 500 by NewListParams.
	Limit int
	// Status filters by upstream status (e.g. "active"). Empty means all.
	Status string
}

// NewListParams builds ListParams from optional query values.
// A nil or non-positive limit means "no explicit limit"; limits above 500
// are capped to keep a single request bounded.
func NewListParams(limit *int, status string) ListParams {
	p := ListParams{Status: status}
	if limit != nil && *limit > 0 {
		p.Limit = *limit
		if p.Limit > 500 {
			p.Limit = 500
		}
	}
	return p
}
