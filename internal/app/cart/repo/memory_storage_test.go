package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	_, err := s.Load(ctx, "cart")
	require.ErrorIs(t, err, contracts.ErrSnapshotNotFound)

	payload := []byte(`[{"id":"1","quantity":1}]`)
	require.NoError(t, s.Save(ctx, "cart", payload))
	payload[0] = 'X'

	got, err := s.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","quantity":1}]`, string(got))

	got[0] = 'Y'
	again, err := s.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, byte('['), again[0])

	require.NoError(t, s.Save(ctx, "cart", []byte(`[]`)))
	got, err = s.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStorage()

	assert.ErrorIs(t, s.Save(ctx, "cart", nil), context.Canceled)
	_, err := s.Load(ctx, "cart")
	assert.ErrorIs(t, err, context.Canceled)
}
