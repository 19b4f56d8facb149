package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/murkotick/storefront/internal/app/catalog/dataset"
	"github.com/murkotick/storefront/internal/app/catalog/repo"
	"github.com/murkotick/storefront/internal/pkg/committer"
	"github.com/murkotick/storefront/internal/pkg/logger"
	"github.com/murkotick/storefront/migrations"
)

// Applies the embedded DDL to a Cloud Spanner database (typically the emulator
// for local dev) and optionally loads a catalog dataset into it.
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	go run ./cmd/migrate \
//	  --database projects/test-project/instances/emulator-instance/databases/test-db \
//	  --seed
func main() {
	fs := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	db := fs.String("database", os.Getenv("SPANNER_DATABASE"), "Spanner database name")
	seed := fs.Bool("seed", false, "load the catalog dataset after applying the schema")
	datasetPath := fs.String("dataset", "", "JSON or YAML dataset to seed (default: built-in dataset)")
	skipDDL := fs.Bool("skip-ddl", false, "do not apply the schema")
	logLevel := fs.String("log-level", "info", "log level")
	_ = fs.Parse(os.Args[1:])

	log, err := logger.New(*logLevel, logger.FormatConsole)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *db == "" {
		log.Fatal("--database or SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if !*skipDDL {
		n, err := applySchema(ctx, *db)
		if err != nil {
			log.Fatal("apply schema", zap.Error(err))
		}
		log.Info("schema applied", zap.Int("statements", n), zap.String("database", *db))
	}

	if *seed {
		n, err := seedCatalog(ctx, *db, *datasetPath, log)
		if err != nil {
			log.Fatal("seed catalog", zap.Error(err))
		}
		log.Info("catalog seeded", zap.Int("products", n), zap.String("database", *db))
	}
}

func applySchema(ctx context.Context, db string) (int, error) {
	stmts, err := migrations.Statements()
	if err != nil {
		return 0, fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return 0, fmt.Errorf("no DDL statements found")
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return 0, fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return 0, fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return 0, fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}
	return len(stmts), nil
}

func seedCatalog(ctx context.Context, db, path string, log *zap.Logger) (int, error) {
	d, err := dataset.Open(path, log.Named("dataset"))
	if err != nil {
		return 0, err
	}

	client, err := spanner.NewClient(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("spanner client: %w", err)
	}
	defer client.Close()

	seeder := repo.NewSeeder(committer.NewAdapter(client, log.Named("committer")))
	if err := seeder.Seed(ctx, d); err != nil {
		return 0, err
	}
	return len(d.Products), nil
}
