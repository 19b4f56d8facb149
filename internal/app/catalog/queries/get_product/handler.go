package get_product

import (
	"context"
	"fmt"

	"github.com/murkotick/storefront/internal/app/catalog/contracts"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute returns the product with the given id or domain.ErrProductNotFound.
func (h *Handler) Execute(ctx context.Context, productID string) (domain.Product, error) {
	const op = "get_product.Handler.Execute"

	products, err := h.readModel.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %q: %w", op, productID, domain.ErrProductNotFound)
}
