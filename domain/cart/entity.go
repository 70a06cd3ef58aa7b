// Package cart defines the cart domain entities shared across modules.
package cart

import "github.com/example/storefront/domain/product"

// LineItem is one product's entry in the cart. Identity is the product ID;
// within a cart at most one line item exists per ID, and quantities
// accumulate rather than duplicate. Quantity is always >= 1 — an item
// reaching zero is removed, never retained.
type LineItem struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Snapshot is an immutable view of the cart state handed to subscribers
// and query callers. IsOpen is the transient sidebar visibility flag; it
// is never persisted.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	IsOpen     bool       `json:"is_open"`
	TotalPrice float64    `json:"total_price"`
	TotalItems int        `json:"total_items"`
}

// TotalPrice returns the sum of price x quantity over the given items.
// Plain float64 accumulation; display rounding is a consumer concern.
func TotalPrice(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems returns the sum of quantities over the given items.
func TotalItems(items []LineItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
