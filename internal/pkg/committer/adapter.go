package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
)

// ErrNilClient is returned when the adapter was built without a Spanner client.
var ErrNilClient = errors.New("committer: spanner client is nil")

// Applier commits a plan atomically. Storage adapters depend on this
// interface rather than on *spanner.Client so their write path can be faked.
type Applier interface {
	Apply(ctx context.Context, plan *Plan) error
}

var _ Applier = (*Adapter)(nil)

type Adapter struct {
	client *spanner.Client
	log    *zap.Logger
}

func NewAdapter(client *spanner.Client, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{client: client, log: log}
}

// Apply buffers every mutation of the plan into one read-write transaction.
// Empty plans commit nothing.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	const op = "committer.Adapter.Apply"

	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return ErrNilClient
	}

	commitTS, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.log.Debug("plan committed",
		zap.Int("mutations", plan.Len()),
		zap.Time("commit_ts", commitTS),
	)
	return nil
}
