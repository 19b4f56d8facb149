package filter_products

import (
	"context"
	"fmt"

	"github.com/murkotick/storefront/internal/app/catalog/contracts"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

// Result is the ordered product list for one set of criteria.
type Result struct {
	Products []domain.Product
	Total    int
}

// Empty reports a loaded result with no matches.
func (r *Result) Empty() bool {
	return r.Total == 0
}

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute re-runs the pipeline over the current dataset. It is meant to be
// called on every criteria change; no results are cached.
func (h *Handler) Execute(ctx context.Context, c domain.FilterCriteria) (*Result, error) {
	const op = "filter_products.Handler.Execute"

	products, err := h.readModel.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filtered := FilterAndSort(products, c)
	return &Result{Products: filtered, Total: len(filtered)}, nil
}
