package repo

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
)

var _ contracts.SnapshotStorage = (*MemoryStorage)(nil)

// MemoryStorage keeps snapshots in process memory. Values are copied on the
// way in and out.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "MemoryStorage.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, key, contracts.ErrSnapshotNotFound)
	}
	return bytes.Clone(v), nil
}

func (s *MemoryStorage) Save(ctx context.Context, key string, payload []byte) error {
	const op = "MemoryStorage.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(payload)
	return nil
}
