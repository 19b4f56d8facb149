package contracts

import (
	"context"

	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// ReadModel serves the read-only product dataset. Implementations return
// copies; callers may not mutate the backing data through them.
type ReadModel interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
