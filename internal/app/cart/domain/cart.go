package domain

import (
	"slices"
	"time"

	catalog "github.com/murkotick/storefront/internal/app/catalog/domain"
)

// Cart is the aggregate root for the shopping cart.
// It keeps exactly one line item per product id, in insertion order, and
// never holds a line item with quantity below one.
type Cart struct {
	items  []LineItem
	events []DomainEvent
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items:  make([]LineItem, 0),
		events: make([]DomainEvent, 0),
	}
}

// ReconstructCart rebuilds a cart from persisted line items.
// Rows with a non-positive quantity are dropped, and for duplicate ids the
// first row wins, so the restored cart always satisfies the invariants.
func ReconstructCart(items []LineItem) *Cart {
	c := NewCart()
	for _, li := range items {
		if li.Quantity < 1 || c.indexOf(li.ID) >= 0 {
			continue
		}
		c.items = append(c.items, li.clone())
	}
	return c
}

// Getters

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, li := range c.items {
		out[i] = li.clone()
	}
	return out
}

// Item returns the line item for productID, if present.
func (c *Cart) Item(productID string) (LineItem, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return LineItem{}, false
	}
	return c.items[i].clone(), true
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) DomainEvents() []DomainEvent {
	return c.events
}

// Business Methods

// AddItem increments the quantity of an existing line item for the product,
// keeping the selection it was created with. Otherwise it appends a new line
// item with quantity 1 and the given selection.
func (c *Cart) AddItem(p catalog.Product, selectedColor, selectedSize string, now time.Time) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.setQuantity(i, c.items[i].Quantity+1, now)
		return
	}

	c.items = append(c.items, LineItem{
		Product:       p.Clone(),
		Quantity:      1,
		SelectedColor: selectedColor,
		SelectedSize:  selectedSize,
	})
	c.events = append(c.events, &ItemAddedEvent{
		Product:       p.ID,
		SelectedColor: selectedColor,
		SelectedSize:  selectedSize,
		AddedAt:       now,
	})
}

// RemoveItem deletes the line item for productID. Absent ids are a no-op.
func (c *Cart) RemoveItem(productID string, now time.Time) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	c.items = slices.Delete(c.items, i, i+1)
	c.events = append(c.events, &ItemRemovedEvent{
		Product:   productID,
		RemovedAt: now,
	})
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero or
// below removes the item. There is no upper bound. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int, now time.Time) {
	if quantity <= 0 {
		c.RemoveItem(productID, now)
		return
	}

	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.setQuantity(i, quantity, now)
}

// Increment adds one to an existing line item.
func (c *Cart) Increment(productID string, now time.Time) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.setQuantity(i, c.items[i].Quantity+1, now)
}

// Decrement subtracts one from an existing line item, removing it at quantity 1.
func (c *Cart) Decrement(productID string, now time.Time) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.UpdateQuantity(productID, c.items[i].Quantity-1, now)
}

// Clear empties the cart.
func (c *Cart) Clear(now time.Time) {
	if len(c.items) == 0 {
		return
	}

	removed := len(c.items)
	c.items = make([]LineItem, 0)
	c.events = append(c.events, &CartClearedEvent{
		RemovedItems: removed,
		ClearedAt:    now,
	})
}

// TotalItems returns the sum of all quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, li := range c.items {
		total += li.Quantity
	}
	return total
}

// TotalPrice returns the sum of price × quantity over all line items.
func (c *Cart) TotalPrice() *Money {
	total := Zero()
	for _, li := range c.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.items, func(li LineItem) bool { return li.ID == productID })
}

func (c *Cart) setQuantity(i, quantity int, now time.Time) {
	old := c.items[i].Quantity
	if old == quantity {
		return
	}

	c.items[i].Quantity = quantity
	c.events = append(c.events, &QuantityChangedEvent{
		Product:     c.items[i].ID,
		OldQuantity: old,
		NewQuantity: quantity,
		ChangedAt:   now,
	})
}
