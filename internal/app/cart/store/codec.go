package store

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/storefront/internal/app/cart/domain"
)

// Encode serializes line items as a JSON array, the snapshot layout kept
// under the storage key. An empty cart encodes as "[]".
func Encode(items []domain.LineItem) ([]byte, error) {
	const op = "store.Encode"

	if items == nil {
		items = []domain.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// Decode parses a snapshot produced by Encode.
func Decode(b []byte) ([]domain.LineItem, error) {
	const op = "store.Decode"

	var items []domain.LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		// "null" is valid JSON but not a cart.
		return nil, fmt.Errorf("%s: snapshot is not an array", op)
	}
	return items, nil
}
