package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CheckoutCompletedEvent is emitted when a simulated checkout finishes.
type CheckoutCompletedEvent struct {
	OrderID      string    `json:"order_id"`
	Confirmation string    `json:"confirmation"`
	Subtotal     float64   `json:"subtotal"`
	Tax          float64   `json:"tax"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// CheckoutCompletedV1 is the typed event definition for completed checkouts.
// Subject: events.checkout.v1.checkout-completed
var CheckoutCompletedV1 = helper.EventDefinition[CheckoutCompletedEvent](
	"checkout", "CheckoutCompleted", "v1",
)
