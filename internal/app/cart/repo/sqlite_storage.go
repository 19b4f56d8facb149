package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
	"github.com/murkotick/storefront/internal/pkg/clock"
)

var _ contracts.SnapshotStorage = (*SQLiteStorage)(nil)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS cart_snapshots (
		snapshot_key TEXT PRIMARY KEY,
		payload      BLOB NOT NULL,
		updated_at   TIMESTAMP NOT NULL
	);`

// SQLiteStorage is a durable local key-value table backed by a single SQLite
// file, the on-disk counterpart of browser local storage.
type SQLiteStorage struct {
	db    *sql.DB
	clock clock.Clock
	log   *zap.Logger
}

// OpenSQLiteStorage opens (creating if needed) the database file at path.
func OpenSQLiteStorage(ctx context.Context, path string, clk clock.Clock, log *zap.Logger) (*SQLiteStorage, error) {
	const op = "OpenSQLiteStorage"

	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// A single connection serializes writers; SQLite allows only one anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	log.Info("sqlite snapshot storage is available", zap.String("path", path))
	return &SQLiteStorage{db: db, clock: clk, log: log}, nil
}

func (s *SQLiteStorage) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "SQLiteStorage.Load"

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_snapshots WHERE snapshot_key = ?`, key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %q: %w", op, key, contracts.ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payload, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, key string, payload []byte) error {
	const op = "SQLiteStorage.Save"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_snapshots (snapshot_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (snapshot_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at;`,
		key, payload, s.clock.Now(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	const op = "SQLiteStorage.Close"

	s.log.Info("closing sqlite snapshot storage...")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
