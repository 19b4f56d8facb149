package domain

import "time"

// DomainEvent is a marker interface for all cart events.
// Domain events represent facts about things that have happened to the cart.
type DomainEvent interface {
	EventType() string
	ProductID() string
	OccurredAt() time.Time
}

// ItemAddedEvent is raised when a product enters the cart as a new line item.
type ItemAddedEvent struct {
	Product       string
	SelectedColor string
	SelectedSize  string
	AddedAt       time.Time
}

func (e *ItemAddedEvent) EventType() string {
	return "cart.item_added"
}

func (e *ItemAddedEvent) ProductID() string {
	return e.Product
}

func (e *ItemAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// QuantityChangedEvent is raised when an existing line item's quantity changes.
type QuantityChangedEvent struct {
	Product     string
	OldQuantity int
	NewQuantity int
	ChangedAt   time.Time
}

func (e *QuantityChangedEvent) EventType() string {
	return "cart.quantity_changed"
}

func (e *QuantityChangedEvent) ProductID() string {
	return e.Product
}

func (e *QuantityChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// ItemRemovedEvent is raised when a line item leaves the cart, either
// explicitly or because its quantity dropped to zero or below.
type ItemRemovedEvent struct {
	Product   string
	RemovedAt time.Time
}

func (e *ItemRemovedEvent) EventType() string {
	return "cart.item_removed"
}

func (e *ItemRemovedEvent) ProductID() string {
	return e.Product
}

func (e *ItemRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// CartClearedEvent is raised when a non-empty cart is emptied.
type CartClearedEvent struct {
	RemovedItems int
	ClearedAt    time.Time
}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

// ProductID is empty: the event concerns the whole cart.
func (e *CartClearedEvent) ProductID() string {
	return ""
}

func (e *CartClearedEvent) OccurredAt() time.Time {
	return e.ClearedAt
}
