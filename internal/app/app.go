package app

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	cartcontracts "github.com/murkotick/storefront/internal/app/cart/contracts"
	"github.com/murkotick/storefront/internal/app/cart/repo"
	"github.com/murkotick/storefront/internal/app/cart/store"
	"github.com/murkotick/storefront/internal/app/catalog/contracts"
	"github.com/murkotick/storefront/internal/app/catalog/dataset"
	"github.com/murkotick/storefront/internal/app/catalog/queries"
	"github.com/murkotick/storefront/internal/app/catalog/queries/catalog_facets"
	"github.com/murkotick/storefront/internal/app/catalog/queries/filter_products"
	"github.com/murkotick/storefront/internal/app/catalog/queries/get_product"
	"github.com/murkotick/storefront/internal/config"
	"github.com/murkotick/storefront/internal/pkg/clock"
	"github.com/murkotick/storefront/internal/pkg/committer"
)

// Queries groups catalog read handlers.
type Queries struct {
	Filter *filter_products.Handler
	Facets *catalog_facets.Handler
	Get    *get_product.Handler
}

// App is the composition root. It owns every long-lived resource; New is the
// start boundary and Close the stop boundary of a session.
type App struct {
	Cart    *store.Store
	Catalog Queries

	log     *zap.Logger
	spanner *spanner.Client
	sqlite  *repo.SQLiteStorage
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	const op = "app.New"

	if log == nil {
		log = zap.NewNop()
	}
	a := &App{log: log}
	clk := clock.RealClock{}

	if cfg.UsesSpanner() {
		client, err := spanner.NewClient(ctx, cfg.Storage.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.spanner = client
	}

	readModel, err := a.initReadModel(cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.Catalog = Queries{
		Filter: filter_products.NewHandler(readModel),
		Facets: catalog_facets.NewHandler(readModel),
		Get:    get_product.NewHandler(readModel),
	}

	storage, err := a.initSnapshotStorage(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.Cart = store.New(ctx, storage,
		store.WithKey(cfg.Cart.StorageKey),
		store.WithClock(clk),
		store.WithLogger(log.Named("cart")),
	)

	log.Debug("application initialized",
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("catalog_source", cfg.Catalog.Source),
	)
	return a, nil
}

func (a *App) initReadModel(cfg config.Config) (contracts.ReadModel, error) {
	if cfg.Catalog.Source == config.SourceSpanner {
		return queries.NewSpannerReadModel(a.spanner), nil
	}

	d, err := dataset.Open(cfg.Catalog.DatasetPath, a.log.Named("dataset"))
	if err != nil {
		return nil, err
	}
	return dataset.NewStatic(d), nil
}

func (a *App) initSnapshotStorage(ctx context.Context, cfg config.Config, clk clock.Clock) (cartcontracts.SnapshotStorage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSpanner:
		cm := committer.NewAdapter(a.spanner, a.log.Named("committer"))
		return repo.NewSpannerStorage(a.spanner, cm, clk), nil
	case config.DriverMemory:
		return repo.NewMemoryStorage(), nil
	default:
		s, err := repo.OpenSQLiteStorage(ctx, cfg.Storage.SQLitePath, clk, a.log.Named("sqlite"))
		if err != nil {
			return nil, err
		}
		a.sqlite = s
		return s, nil
	}
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error

	if a.Cart != nil {
		a.Cart.Close()
	}
	if a.sqlite != nil {
		errs = append(errs, a.sqlite.Close())
	}
	if a.spanner != nil {
		a.spanner.Close()
	}

	a.log.Debug("application closed")
	return errors.Join(errs...)
}
