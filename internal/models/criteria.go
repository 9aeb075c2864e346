package models

// PriceRange is an inclusive [Min, Max] price constraint. A Max of zero
// means no upper bound, so the zero value passes every price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether the price falls inside the range, both ends
// inclusive.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

// FilterCriteria is the combined set of constraints a catalog query
// applies. Empty fields are unconstrained and pass every product, so the
// zero value selects the whole catalog.
type FilterCriteria struct {
	SearchText   string     `json:"search"`
	Categories   []string   `json:"categories"`
	Brands       []string   `json:"brands"`
	PriceRange   PriceRange `json:"priceRange"`
	MinRating    float64    `json:"minRating"`
	FeaturedOnly bool       `json:"featuredOnly"`
}

// SortKey selects the ordering applied to a filtered product list.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	// SortNameAsc orders alphabetically. The storefront surfaces it as
	// "newest"; the catalog has no creation timestamp, so name order
	// stands in for recency.
	SortNameAsc        SortKey = "name-asc"
	SortPopularityDesc SortKey = "popularity-desc"
)

// ParseSortKey maps a raw query value to a SortKey. Anything unrecognized,
// including the empty string, falls back to relevance order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc, SortPopularityDesc:
		return SortKey(raw)
	default:
		return SortRelevance
	}
}
