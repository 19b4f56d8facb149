package contracts

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when nothing is stored under the key.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// SnapshotStorage is durable key-value storage for serialized carts.
// Save replaces the whole value stored under key.
type SnapshotStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}
