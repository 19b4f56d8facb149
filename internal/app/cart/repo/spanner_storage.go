package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
	"github.com/murkotick/storefront/internal/models/m_cart"
	"github.com/murkotick/storefront/internal/pkg/clock"
	"github.com/murkotick/storefront/internal/pkg/committer"
)

var _ contracts.SnapshotStorage = (*SpannerStorage)(nil)

// SpannerStorage keeps cart snapshots in the cart_snapshots table, one row per key.
type SpannerStorage struct {
	client    *spanner.Client
	committer committer.Applier
	clock     clock.Clock
}

func NewSpannerStorage(client *spanner.Client, cm committer.Applier, clk clock.Clock) *SpannerStorage {
	return &SpannerStorage{client: client, committer: cm, clock: clk}
}

func (s *SpannerStorage) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "SpannerStorage.Load"

	row, err := s.client.Single().ReadRow(ctx, m_cart.TableName, spanner.Key{key}, []string{m_cart.ColPayload})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, fmt.Errorf("%s: %q: %w", op, key, contracts.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload string
	if err := row.Columns(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return []byte(payload), nil
}

// Save replaces the snapshot row in a single commit.
func (s *SpannerStorage) Save(ctx context.Context, key string, payload []byte) error {
	const op = "SpannerStorage.Save"

	plan := committer.NewPlan(saveMut(key, payload, s.clock))
	if err := s.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func saveMut(key string, payload []byte, clk clock.Clock) *spanner.Mutation {
	return m_cart.UpsertMutation(m_cart.BuildUpsertMap(key, payload, clk.Now()))
}
