package checkout

import (
	"context"
	"time"
)

// StartCheckoutRequest is the request for starting a checkout.
type StartCheckoutRequest struct{}

// OrderResponse is the result of a completed checkout.
type OrderResponse struct {
	OrderID      string    `json:"order_id"`
	Confirmation string    `json:"confirmation"`
	Subtotal     float64   `json:"subtotal"`
	Tax          float64   `json:"tax"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// StatusRequest is the request for the checkout status.
type StatusRequest struct{}

// StatusResponse reports whether a checkout is running and the last
// completed order, if any.
type StatusResponse struct {
	InProgress bool           `json:"in_progress"`
	LastOrder  *OrderResponse `json:"last_order,omitempty"`
}

// CheckoutPort is the contract driving adapters use to interact with the
// checkout module.
type CheckoutPort interface {
	Start(ctx context.Context) (*OrderResponse, error)
	Status(ctx context.Context) (*StatusResponse, error)
}
