package queries

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront/internal/app/catalog/contracts"
	"github.com/murkotick/storefront/internal/app/catalog/domain"
	"github.com/murkotick/storefront/internal/models/m_category"
	"github.com/murkotick/storefront/internal/models/m_product"
)

var _ contracts.ReadModel = (*SpannerReadModel)(nil)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel
// by reading the products and categories tables in dataset order.
type SpannerReadModel struct {
	client *spanner.Client
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{client: client}
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "SpannerReadModel.ListProducts"

	stmt := spanner.Statement{SQL: fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s ASC",
		strings.Join(m_product.SelectColumns, ", "), m_product.TableName, m_product.ColPosition,
	)}
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		p, err := decodeProduct(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, p)
	}
}

func (rm *SpannerReadModel) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "SpannerReadModel.ListCategories"

	stmt := spanner.Statement{SQL: fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY %s ASC",
		m_category.ColCategoryID, m_category.ColName, m_category.TableName, m_category.ColPosition,
	)}
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var c domain.Category
		if err := row.Columns(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, c)
	}
}

func decodeProduct(row *spanner.Row) (domain.Product, error) {
	var (
		p           domain.Product
		description spanner.NullString
		reviews     int64
	)
	err := row.Columns(
		&p.ID, &p.Name, &description, &p.Price, &p.Category,
		&p.Rating, &reviews, &p.InStock,
		&p.Colors, &p.Sizes, &p.Features, &p.Image,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if description.Valid {
		p.Description = description.StringVal
	}
	p.Reviews = int(reviews)
	return p, nil
}
