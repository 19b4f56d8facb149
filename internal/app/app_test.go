package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/murkotick/storefront/internal/app/catalog/domain"
	"github.com/murkotick/storefront/internal/config"
)

func loadConfig(t *testing.T, args ...string) config.Config {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage-driver", "", "")
	fs.String("sqlite-path", "", "")
	fs.String("cart-key", "", "")
	require.NoError(t, fs.Parse(args))

	cfg, err := config.Load(fs)
	require.NoError(t, err)
	return cfg
}

func TestNew_MemoryDriver(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, loadConfig(t, "--storage-driver", config.DriverMemory), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer a.Close()

	res, err := a.Catalog.Filter.Execute(ctx, domain.DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Total)

	p, err := a.Catalog.Get.Execute(ctx, res.Products[0].ID)
	require.NoError(t, err)
	require.NoError(t, a.Cart.AddItem(ctx, p, p.DefaultColor(), p.DefaultSize()))
	assert.Equal(t, 1, a.Cart.TotalItems())
}

func TestNew_SQLiteCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := loadConfig(t, "--sqlite-path", filepath.Join(t.TempDir(), "storefront.db"), "--cart-key", "session")

	first, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	p, err := first.Catalog.Get.Execute(ctx, "4")
	require.NoError(t, err)
	require.NoError(t, first.Cart.AddItem(ctx, p, p.DefaultColor(), p.DefaultSize()))
	require.NoError(t, first.Cart.Increment(ctx, p.ID))
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	items := second.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "4", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, p.DefaultSize(), items[0].SelectedSize)
}
