package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
	"github.com/murkotick/storefront/internal/app/cart/store"
)

func TestCartSurvivesRestart(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := "cart-" + uuid.NewString()
	headphones, shirt := seeded.Products[0], seeded.Products[1]

	s := store.New(ctx, newSnapshotStorage(), store.WithKey(key), store.WithClock(clk))
	require.NoError(t, s.AddItem(ctx, headphones, headphones.DefaultColor(), headphones.DefaultSize()))
	require.NoError(t, s.AddItem(ctx, shirt, shirt.DefaultColor(), shirt.DefaultSize()))
	require.NoError(t, s.AddItem(ctx, headphones, "", ""))
	wantTotal := s.TotalPrice()
	s.Close()

	restored := store.New(ctx, newSnapshotStorage(), store.WithKey(key), store.WithClock(clk))
	defer restored.Close()

	items := restored.Items()
	require.Len(t, items, 2)
	assert.Equal(t, headphones.ID, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, headphones.DefaultColor(), items[0].SelectedColor)
	assert.Equal(t, shirt.ID, items[1].ID)
	assert.Equal(t, 3, restored.TotalItems())
	assert.True(t, wantTotal.Equals(restored.TotalPrice()))
}

func TestCartClearPersistsEmptySnapshot(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := "cart-" + uuid.NewString()
	storage := newSnapshotStorage()

	s := store.New(ctx, storage, store.WithKey(key), store.WithClock(clk))
	require.NoError(t, s.AddItem(ctx, seeded.Products[0], "", ""))
	require.NoError(t, s.Clear(ctx))
	s.Close()

	payload, err := storage.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(payload))
}

func TestSpannerStorage_LoadMissingKey(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := newSnapshotStorage().Load(ctx, "missing-"+uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrSnapshotNotFound))
}
