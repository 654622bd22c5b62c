package domain

// Itinerary listings default to 20 per page and never return more than 100.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams selects one page of a user's itineraries. Page starts at 1.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams reads the optional page and limit query values. Missing
// or non-positive values use the defaults and limit is clamped to MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page > 0 {
		p.Page = *page
	}
	if limit != nil && *limit > 0 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset is the number of itineraries on the pages before this one.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
