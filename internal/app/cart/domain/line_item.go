package domain

import (
	catalog "github.com/murkotick/storefront/internal/app/catalog/domain"
)

// LineItem is one cart row: the full product record, its quantity and the
// options picked when the row was created. Product fields are flattened in
// the JSON snapshot next to quantity.
type LineItem struct {
	catalog.Product

	Quantity      int    `json:"quantity"`
	SelectedColor string `json:"selectedColor,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
}

// Subtotal returns price × quantity.
func (li LineItem) Subtotal() *Money {
	return NewMoneyFromFloat(li.Price).MultiplyByInt(li.Quantity)
}

func (li LineItem) clone() LineItem {
	li.Product = li.Product.Clone()
	return li
}
