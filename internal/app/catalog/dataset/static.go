package dataset

import (
	"context"
	"slices"

	"github.com/murkotick/storefront/internal/app/catalog/contracts"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

var _ contracts.ReadModel = (*Static)(nil)

// Static is an in-memory read model over a loaded Dataset. Every call returns
// fresh copies so the dataset stays immutable for the session.
type Static struct {
	products   []domain.Product
	categories []domain.Category
}

func NewStatic(d Dataset) *Static {
	return &Static{
		products:   domain.CloneProducts(d.Products),
		categories: slices.Clone(d.Categories),
	}
}

func (s *Static) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.CloneProducts(s.products), nil
}

func (s *Static) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
