package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_SkipsNil(t *testing.T) {
	m := spanner.InsertOrUpdateMap("cart_snapshots", map[string]interface{}{"snapshot_key": "cart"})

	p := NewPlan(nil, m)
	p.Add(nil)

	assert.Equal(t, 1, p.Len())
	assert.False(t, p.IsEmpty())
	assert.Equal(t, []*spanner.Mutation{m}, p.Mutations())
}

func TestAdapter_Apply(t *testing.T) {
	a := NewAdapter(nil, nil)

	t.Run("nil plan is a no-op", func(t *testing.T) {
		assert.NoError(t, a.Apply(context.Background(), nil))
	})

	t.Run("empty plan is a no-op", func(t *testing.T) {
		assert.NoError(t, a.Apply(context.Background(), NewPlan()))
	})

	t.Run("requires a client for real work", func(t *testing.T) {
		m := spanner.InsertOrUpdateMap("cart_snapshots", map[string]interface{}{"snapshot_key": "cart"})
		err := a.Apply(context.Background(), NewPlan(m))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNilClient)
	})
}
