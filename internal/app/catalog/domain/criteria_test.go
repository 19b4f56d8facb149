package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		in   string
		want SortOption
	}{
		{"price-low-high", SortPriceLowHigh},
		{"  PRICE-HIGH-LOW ", SortPriceHighLow},
		{"rating", SortRating},
		{"name-a-z", SortNameAZ},
		{"name-z-a", SortNameZA},
		{"default", SortDefault},
		{"featured", SortDefault},
		{"", SortDefault},
		{"cheapest-first", SortDefault},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOption(tt.in))
		})
	}
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()

	assert.Equal(t, AllCategories, c.Category)
	assert.Equal(t, 0.0, c.MinPrice)
	assert.Equal(t, 1000.0, c.MaxPrice)
	assert.Equal(t, SortDefault, c.Sort)
	assert.Empty(t, c.Query)
	assert.False(t, c.InStockOnly)
}

func TestFilterCriteria_Predicates(t *testing.T) {
	p := Product{ID: "1", Name: "Wireless Headphones", Description: "Noise cancelling", Category: "electronics", Price: 50, InStock: false}

	t.Run("category", func(t *testing.T) {
		assert.True(t, FilterCriteria{Category: AllCategories}.MatchesCategory(p))
		assert.True(t, FilterCriteria{Category: "electronics"}.MatchesCategory(p))
		assert.False(t, FilterCriteria{Category: "home"}.MatchesCategory(p))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		assert.True(t, FilterCriteria{MinPrice: 50, MaxPrice: 50}.MatchesPrice(p))
		assert.False(t, FilterCriteria{MinPrice: 50.01, MaxPrice: 100}.MatchesPrice(p))
		assert.False(t, FilterCriteria{MinPrice: 100, MaxPrice: 10}.MatchesPrice(p))
	})

	t.Run("stock", func(t *testing.T) {
		assert.True(t, FilterCriteria{}.MatchesStock(p))
		assert.False(t, FilterCriteria{InStockOnly: true}.MatchesStock(p))
	})

	t.Run("query is case-insensitive over name, description and category", func(t *testing.T) {
		assert.True(t, FilterCriteria{}.MatchesQuery(p))
		assert.True(t, FilterCriteria{Query: "HEADPHONES"}.MatchesQuery(p))
		assert.True(t, FilterCriteria{Query: "cancel"}.MatchesQuery(p))
		assert.True(t, FilterCriteria{Query: "Electro"}.MatchesQuery(p))
		assert.False(t, FilterCriteria{Query: "skillet"}.MatchesQuery(p))
	})
}

func TestProduct_Options(t *testing.T) {
	p := Product{Colors: []string{"black", "silver"}, Sizes: []string{"M"}}

	assert.Equal(t, "black", p.DefaultColor())
	assert.Equal(t, "M", p.DefaultSize())
	assert.True(t, p.HasColor("silver"))
	assert.False(t, p.HasSize("XL"))

	var bare Product
	assert.Empty(t, bare.DefaultColor())
	assert.Empty(t, bare.DefaultSize())
}

func TestProduct_CloneDoesNotAlias(t *testing.T) {
	p := Product{ID: "1", Colors: []string{"black"}}

	c := p.Clone()
	c.Colors[0] = "white"

	assert.Equal(t, "black", p.Colors[0])
	assert.NotNil(t, CloneProducts(nil))
}
