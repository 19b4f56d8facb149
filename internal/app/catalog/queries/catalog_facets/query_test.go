package catalog_facets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront/internal/app/catalog/dataset"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

func TestCompute(t *testing.T) {
	categories := []domain.Category{
		{ID: domain.AllCategories, Name: "All Products"},
		{ID: "home", Name: "Home"},
		{ID: "toys", Name: "Toys"},
	}
	products := []domain.Product{
		{ID: "1", Category: "home", Price: 40, InStock: true},
		{ID: "2", Category: "home", Price: 15.5, InStock: false},
		{ID: "3", Category: "garden", Price: 120, InStock: true},
	}

	f := Compute(products, categories)

	assert.Equal(t, []CategoryCount{
		{ID: domain.AllCategories, Name: "All Products", Count: 3},
		{ID: "home", Name: "Home", Count: 2},
		{ID: "toys", Name: "Toys", Count: 0},
	}, f.Categories)
	assert.Equal(t, 2, f.InStock)
	assert.Equal(t, 1, f.OutOfStock)
	assert.Equal(t, PriceBounds{Min: 15.5, Max: 120}, f.Price)
}

func TestCompute_EmptyDataset(t *testing.T) {
	f := Compute(nil, nil)

	assert.NotNil(t, f.Categories)
	assert.Empty(t, f.Categories)
	assert.Zero(t, f.InStock)
	assert.Zero(t, f.OutOfStock)
	assert.Equal(t, PriceBounds{}, f.Price)
}

func TestHandler_Execute_DefaultDataset(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)

	f, err := NewHandler(dataset.NewStatic(d)).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(d.Products), f.InStock+f.OutOfStock)
	require.NotEmpty(t, f.Categories)
	assert.Equal(t, domain.AllCategories, f.Categories[0].ID)
	assert.Equal(t, len(d.Products), f.Categories[0].Count)
}
