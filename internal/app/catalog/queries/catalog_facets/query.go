package catalog_facets

import (
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// CategoryCount is one entry of the category filter with its product count.
type CategoryCount struct {
	ID    string
	Name  string
	Count int
}

// PriceBounds is the cheapest and the most expensive price in the dataset.
// Both are zero for an empty dataset.
type PriceBounds struct {
	Min float64
	Max float64
}

// Facets summarises the dataset for the filter panel.
type Facets struct {
	Categories []CategoryCount
	InStock    int
	OutOfStock int
	Price      PriceBounds
}

// Compute counts products per category descriptor (in descriptor order) and
// by stock status. The AllCategories descriptor, when present, counts every
// product.
func Compute(products []domain.Product, categories []domain.Category) Facets {
	perCategory := make(map[string]int, len(categories))
	var f Facets

	for i, p := range products {
		perCategory[p.Category]++

		if p.InStock {
			f.InStock++
		} else {
			f.OutOfStock++
		}

		if i == 0 {
			f.Price = PriceBounds{Min: p.Price, Max: p.Price}
			continue
		}
		f.Price.Min = min(f.Price.Min, p.Price)
		f.Price.Max = max(f.Price.Max, p.Price)
	}

	f.Categories = make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		count := perCategory[c.ID]
		if c.ID == domain.AllCategories {
			count = len(products)
		}
		f.Categories = append(f.Categories, CategoryCount{ID: c.ID, Name: c.Name, Count: count})
	}
	return f
}
