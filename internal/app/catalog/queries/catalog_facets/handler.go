package catalog_facets

import (
	"context"
	"fmt"

	"github.com/murkotick/storefront/internal/app/catalog/contracts"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context) (*Facets, error) {
	const op = "catalog_facets.Handler.Execute"

	products, err := h.readModel.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	categories, err := h.readModel.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := Compute(products, categories)
	return &f, nil
}
