package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront/internal/app/catalog/dataset"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
	"github.com/murkotick/storefront/internal/models/m_category"
	"github.com/murkotick/storefront/internal/models/m_product"
	"github.com/murkotick/storefront/internal/pkg/committer"
)

// Seeder writes a dataset into the Spanner read model tables.
type Seeder struct {
	committer committer.Applier
}

func NewSeeder(cm committer.Applier) *Seeder {
	return &Seeder{committer: cm}
}

// Seed upserts every category and product in one commit. Existing rows with
// the same ids are overwritten; rows absent from d are left alone.
func (s *Seeder) Seed(ctx context.Context, d dataset.Dataset) error {
	const op = "Seeder.Seed"

	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.committer.Apply(ctx, SeedPlan(d)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SeedPlan builds the upserts for d. Position preserves dataset order.
func SeedPlan(d dataset.Dataset) *committer.Plan {
	plan := committer.NewPlan()
	for i, c := range d.Categories {
		plan.Add(m_category.InsertOrUpdateMutation(c.ID, c.Name, int64(i)))
	}
	for i, p := range d.Products {
		plan.Add(productMut(p, int64(i)))
	}
	return plan
}

func productMut(p domain.Product, position int64) *spanner.Mutation {
	var description *string
	if p.Description != "" {
		description = &p.Description
	}
	return m_product.InsertOrUpdateMutation(m_product.BuildInsertMap(
		p.ID, position, p.Name, description,
		p.Price, p.Category, p.Rating, int64(p.Reviews), p.InStock,
		p.Colors, p.Sizes, p.Features, p.Image,
	))
}
