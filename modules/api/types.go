package api

import (
	domain "github.com/example/storefront/domain/cart"
)

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// AddCartItemRequest is the request body for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

// UpdateCartItemRequest is the request body for setting a line item
// quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartViewResponse is the cart state with display totals applied. Tax is
// presentation policy, computed here rather than in the cart store.
type CartViewResponse struct {
	Items      []domain.LineItem `json:"items"`
	IsOpen     bool              `json:"is_open"`
	TotalItems int               `json:"total_items"`
	Subtotal   float64           `json:"subtotal"`
	Tax        float64           `json:"tax"`
	Total      float64           `json:"total"`
}
