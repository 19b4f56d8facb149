package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront/internal/models/m_cart"
	"github.com/murkotick/storefront/internal/pkg/clock"
	"github.com/murkotick/storefront/internal/pkg/committer"
)

type recordingApplier struct {
	plans []*committer.Plan
	err   error
}

func (r *recordingApplier) Apply(_ context.Context, plan *committer.Plan) error {
	r.plans = append(r.plans, plan)
	return r.err
}

func TestSpannerStorage_SaveCommitsOneMutation(t *testing.T) {
	rec := &recordingApplier{}
	s := NewSpannerStorage(nil, rec, clock.NewFake(time.Now()))

	err := s.Save(context.Background(), "cart", []byte(`[]`))

	require.NoError(t, err)
	require.Len(t, rec.plans, 1)
	assert.Equal(t, 1, rec.plans[0].Len())
}

func TestSpannerStorage_SaveError(t *testing.T) {
	boom := errors.New("aborted")
	s := NewSpannerStorage(nil, &recordingApplier{err: boom}, clock.NewFake(time.Now()))

	err := s.Save(context.Background(), "cart", []byte(`[]`))

	assert.ErrorIs(t, err, boom)
}

func TestBuildUpsertMap(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	values := m_cart.BuildUpsertMap("cart", []byte(`[{"id":"1"}]`), at)

	assert.Equal(t, "cart", values[m_cart.ColSnapshotKey])
	assert.Equal(t, `[{"id":"1"}]`, values[m_cart.ColPayload])
	assert.Equal(t, at, values[m_cart.ColUpdatedAt])
}
