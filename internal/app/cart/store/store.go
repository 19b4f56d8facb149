package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/murkotick/storefront/internal/app/cart/contracts"
	"github.com/murkotick/storefront/internal/app/cart/domain"
	catalog "github.com/murkotick/storefront/internal/app/catalog/domain"
	"github.com/murkotick/storefront/internal/pkg/clock"
)

// DefaultKey is the storage key the cart snapshot lives under.
const DefaultKey = "cart"

// ErrStoreClosed is returned by mutations issued after Close.
var ErrStoreClosed = errors.New("cart store is closed")

// Subscriber receives the events of one mutation, in order. It runs on the
// mutating goroutine after the store lock is released, so it may read the store.
type Subscriber func(events []domain.DomainEvent)

// Store owns the cart for one session. Every mutation is applied to the
// aggregate, then the whole cart is re-serialized and written under the key.
// A write failure is returned as is and not retried; the in-memory cart keeps
// the mutation.
type Store struct {
	mu      sync.Mutex
	cart    *domain.Cart
	storage contracts.SnapshotStorage
	key     string
	clock   clock.Clock
	log     *zap.Logger

	subscribers map[int]Subscriber
	nextSubID   int
	closed      bool
}

type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithClock(clk clock.Clock) Option {
	return func(s *Store) {
		if clk != nil {
			s.clock = clk
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New builds a store and restores the cart saved under its key. A missing or
// unreadable snapshot yields an empty cart; New never fails.
func New(ctx context.Context, storage contracts.SnapshotStorage, opts ...Option) *Store {
	if storage == nil {
		panic("cart store: snapshot storage is nil")
	}

	s := &Store{
		storage:     storage,
		key:         DefaultKey,
		clock:       clock.RealClock{},
		log:         zap.NewNop(),
		subscribers: make(map[int]Subscriber),
	}
	for _, o := range opts {
		o(s)
	}

	s.cart = s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) *domain.Cart {
	log := s.log.With(zap.String("key", s.key))

	payload, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, contracts.ErrSnapshotNotFound) {
			log.Debug("no saved cart, starting empty")
		} else {
			log.Warn("failed to load saved cart, starting empty", zap.Error(err))
		}
		return domain.NewCart()
	}

	items, err := Decode(payload)
	if err != nil {
		log.Warn("saved cart is malformed, starting empty", zap.Error(err))
		return domain.NewCart()
	}

	c := domain.ReconstructCart(items)
	log.Debug("cart restored", zap.Int("line_items", c.Len()))
	return c
}

// Mutations

// AddItem puts one unit of p into the cart. The selection only applies when a
// new line item is created; re-adding a product keeps its original selection.
func (s *Store) AddItem(ctx context.Context, p catalog.Product, selectedColor, selectedSize string) error {
	return s.mutate(ctx, "AddItem", func(c *domain.Cart, now time.Time) {
		c.AddItem(p, selectedColor, selectedSize, now)
	})
}

func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	return s.mutate(ctx, "RemoveItem", func(c *domain.Cart, now time.Time) {
		c.RemoveItem(productID, now)
	})
}

// UpdateQuantity sets a line item's quantity; zero or below removes it.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	return s.mutate(ctx, "UpdateQuantity", func(c *domain.Cart, now time.Time) {
		c.UpdateQuantity(productID, quantity, now)
	})
}

func (s *Store) Increment(ctx context.Context, productID string) error {
	return s.mutate(ctx, "Increment", func(c *domain.Cart, now time.Time) {
		c.Increment(productID, now)
	})
}

// Decrement removes the line item when its quantity is 1.
func (s *Store) Decrement(ctx context.Context, productID string) error {
	return s.mutate(ctx, "Decrement", func(c *domain.Cart, now time.Time) {
		c.Decrement(productID, now)
	})
}

func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, "Clear", func(c *domain.Cart, now time.Time) {
		c.Clear(now)
	})
}

// Reads

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

func (s *Store) Item(productID string) (domain.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Item(productID)
}

// TotalItems is the sum of all quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

// TotalPrice is the sum of price × quantity; zero for an empty cart.
func (s *Store) TotalPrice() *domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

// Subscribe registers fn for every later mutation that changes the cart.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Close ends the store's lifetime: subscribers are dropped and further
// mutations fail with ErrStoreClosed. Reads keep working.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	clear(s.subscribers)
}

func (s *Store) mutate(ctx context.Context, name string, fn func(c *domain.Cart, now time.Time)) error {
	op := "Store." + name

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrStoreClosed)
	}

	fn(s.cart, s.clock.Now())
	events := s.cart.DomainEvents()
	s.cart.ClearEvents()

	err := s.persistLocked(ctx)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if len(events) > 0 {
		for _, sub := range subs {
			sub(events)
		}
	}

	if err != nil {
		s.log.Error("failed to persist cart", zap.String("op", op), zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := Encode(s.cart.Items())
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, s.key, payload)
}

// subscribersLocked returns subscribers in registration order.
func (s *Store) subscribersLocked() []Subscriber {
	out := make([]Subscriber, 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if sub, ok := s.subscribers[id]; ok {
			out = append(out, sub)
		}
	}
	return out
}
