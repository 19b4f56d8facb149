package filter_products

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// FilterAndSort runs the catalog pipeline: category, price, stock and search
// filters, then a stable sort. The input slice is never modified and the
// result is never nil, so an empty result is distinguishable from "not loaded".
func FilterAndSort(products []domain.Product, c domain.FilterCriteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}

	if cmpFn := comparator(c.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// comparator returns nil for SortDefault: dataset order is kept as-is.
func comparator(o domain.SortOption) func(a, b domain.Product) int {
	switch o {
	case domain.SortPriceLowHigh:
		return func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceHighLow:
		return func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortRating:
		return func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortNameAZ:
		col := newCollator()
		return func(a, b domain.Product) int { return col.CompareString(a.Name, b.Name) }
	case domain.SortNameZA:
		col := newCollator()
		return func(a, b domain.Product) int { return col.CompareString(b.Name, a.Name) }
	default:
		return nil
	}
}

// newCollator builds a root-locale collator. Collators keep internal buffers,
// so one is created per sort.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}
