// Package events holds the typed event definitions shared between modules.
package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ItemAddedEvent is emitted when a product is added to the cart.
type ItemAddedEvent struct {
	ProductID  int       `json:"product_id"`
	Title      string    `json:"title"`
	Quantity   int       `json:"quantity"`
	TotalItems int       `json:"total_items"`
	AddedAt    time.Time `json:"added_at"`
}

// ItemAddedV1 is the typed event definition for cart additions.
// Subject: events.cart.v1.item-added
var ItemAddedV1 = helper.EventDefinition[ItemAddedEvent](
	"cart", "ItemAdded", "v1",
)

// ItemRemovedEvent is emitted when a line item is removed from the cart.
type ItemRemovedEvent struct {
	ProductID int       `json:"product_id"`
	RemovedAt time.Time `json:"removed_at"`
}

// ItemRemovedV1 is the typed event definition for cart removals.
// Subject: events.cart.v1.item-removed
var ItemRemovedV1 = helper.EventDefinition[ItemRemovedEvent](
	"cart", "ItemRemoved", "v1",
)

// QuantityUpdatedEvent is emitted when a line item quantity is set.
type QuantityUpdatedEvent struct {
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuantityUpdatedV1 is the typed event definition for quantity changes.
// Subject: events.cart.v1.quantity-updated
var QuantityUpdatedV1 = helper.EventDefinition[QuantityUpdatedEvent](
	"cart", "QuantityUpdated", "v1",
)

// CartClearedEvent is emitted when the cart is emptied.
type CartClearedEvent struct {
	ItemsRemoved int       `json:"items_removed"`
	ClearedAt    time.Time `json:"cleared_at"`
}

// CartClearedV1 is the typed event definition for cart clears.
// Subject: events.cart.v1.cart-cleared
var CartClearedV1 = helper.EventDefinition[CartClearedEvent](
	"cart", "CartCleared", "v1",
)
