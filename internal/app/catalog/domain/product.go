package domain

import "slices"

// AllCategories is the category key that disables category filtering.
const AllCategories = "all"

// Product is an immutable catalog record supplied by the dataset.
// Colors, Sizes and Features are optional and may be nil. An empty list and
// an absent one are kept distinct when encoded ("[]" vs null).
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       float64  `json:"price" yaml:"price"`
	Category    string   `json:"category" yaml:"category"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Reviews     int      `json:"reviews" yaml:"reviews"`
	InStock     bool     `json:"inStock" yaml:"inStock"`
	Colors      []string `json:"colors" yaml:"colors"`
	Sizes       []string `json:"sizes" yaml:"sizes"`
	Features    []string `json:"features" yaml:"features"`
	Image       string   `json:"image" yaml:"image"`
}

// Category is a {id, name} descriptor for the category filter.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Clone returns a deep copy so callers can never alias the dataset's slices.
func (p Product) Clone() Product {
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	p.Features = slices.Clone(p.Features)
	return p
}

// Purchasable reports whether the product can be put into a cart.
func (p Product) Purchasable() bool {
	return p.InStock
}

// DefaultColor returns the preselected color, or "" when the product has none.
func (p Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// DefaultSize returns the preselected size, or "" when the product has none.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

func (p Product) HasColor(color string) bool {
	return slices.Contains(p.Colors, color)
}

func (p Product) HasSize(size string) bool {
	return slices.Contains(p.Sizes, size)
}

// CloneProducts deep-copies a product slice. A nil input yields an empty slice.
func CloneProducts(ps []Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}
