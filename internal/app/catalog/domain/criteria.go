package domain

import "strings"

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	// SortDefault keeps dataset order ("featured").
	SortDefault SortOption = "default"

	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"

	// SortRating orders by rating, highest first.
	SortRating SortOption = "rating"

	SortNameAZ SortOption = "name-a-z"
	SortNameZA SortOption = "name-z-a"
)

// Default price bounds used when filters are cleared.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

// SortOptions lists every recognised option in display order.
func SortOptions() []SortOption {
	return []SortOption{
		SortDefault,
		SortPriceLowHigh,
		SortPriceHighLow,
		SortRating,
		SortNameAZ,
		SortNameZA,
	}
}

// ParseSortOption maps a token to a SortOption. Unknown tokens, including the
// empty string and "featured", resolve to SortDefault.
func ParseSortOption(s string) SortOption {
	token := SortOption(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range SortOptions() {
		if o == token {
			return o
		}
	}
	return SortDefault
}

// FilterCriteria is the combined filter, search and sort input to the catalog engine.
type FilterCriteria struct {
	Category    string
	MinPrice    float64
	MaxPrice    float64
	Sort        SortOption
	Query       string
	InStockOnly bool
}

// DefaultCriteria returns the cleared-filters state.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Category: AllCategories,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Sort:     SortDefault,
	}
}

// MatchesCategory is true for AllCategories or an exact category match.
func (c FilterCriteria) MatchesCategory(p Product) bool {
	return c.Category == AllCategories || p.Category == c.Category
}

// MatchesPrice checks the inclusive [MinPrice, MaxPrice] range.
// An inverted range matches nothing.
func (c FilterCriteria) MatchesPrice(p Product) bool {
	return p.Price >= c.MinPrice && p.Price <= c.MaxPrice
}

func (c FilterCriteria) MatchesStock(p Product) bool {
	return !c.InStockOnly || p.InStock
}

// MatchesQuery does a case-insensitive substring match on name, description
// and category. An empty query matches everything.
func (c FilterCriteria) MatchesQuery(p Product) bool {
	if c.Query == "" {
		return true
	}
	q := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Matches applies every active predicate.
func (c FilterCriteria) Matches(p Product) bool {
	return c.MatchesCategory(p) &&
		c.MatchesPrice(p) &&
		c.MatchesStock(p) &&
		c.MatchesQuery(p)
}
