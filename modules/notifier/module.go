// Package notifier consumes cart and checkout events and records user
// facing notifications, standing in for the toast and badge surfaces.
package notifier

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/storefront/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Notification is a logged user-facing notification.
type Notification struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Module subscribes to cart and checkout events. Any number of such
// consumers can be registered without the publishing modules knowing
// about them.
type Module struct {
	mu            sync.RWMutex
	notifications []Notification
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)

// NewModule creates a new notifier module.
func NewModule() *Module {
	return &Module{
		notifications: make([]Notification, 0),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "notifier"
}

// RegisterEventConsumers subscribes to the cart and checkout events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.ItemAddedV1, m.handleItemAdded, m); err != nil {
		return fmt.Errorf("failed to register ItemAdded consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ItemRemovedV1, m.handleItemRemoved, m); err != nil {
		return fmt.Errorf("failed to register ItemRemoved consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.QuantityUpdatedV1, m.handleQuantityUpdated, m); err != nil {
		return fmt.Errorf("failed to register QuantityUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.CartClearedV1, m.handleCartCleared, m); err != nil {
		return fmt.Errorf("failed to register CartCleared consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.CheckoutCompletedV1, m.handleCheckoutCompleted, m); err != nil {
		return fmt.Errorf("failed to register CheckoutCompleted consumer: %w", err)
	}

	log.Printf("[notifier] Registered event consumers: ItemAdded, ItemRemoved, QuantityUpdated, CartCleared, CheckoutCompleted")
	return nil
}

func (m *Module) handleItemAdded(_ context.Context, event events.ItemAddedEvent, _ *mono.Msg) error {
	log.Printf("[notifier] Added to cart: %s (qty %d, %d items total)", event.Title, event.Quantity, event.TotalItems)
	m.record("item_added", fmt.Sprintf("%s added to cart!", event.Title))
	return nil
}

func (m *Module) handleItemRemoved(_ context.Context, event events.ItemRemovedEvent, _ *mono.Msg) error {
	log.Printf("[notifier] Removed from cart: product %d", event.ProductID)
	m.record("item_removed", "Item removed from cart")
	return nil
}

func (m *Module) handleQuantityUpdated(_ context.Context, event events.QuantityUpdatedEvent, _ *mono.Msg) error {
	log.Printf("[notifier] Quantity updated: product %d set to %d", event.ProductID, event.Quantity)
	m.record("quantity_updated", fmt.Sprintf("Quantity updated to %d", event.Quantity))
	return nil
}

func (m *Module) handleCartCleared(_ context.Context, event events.CartClearedEvent, _ *mono.Msg) error {
	log.Printf("[notifier] Cart cleared (%d line items)", event.ItemsRemoved)
	m.record("cart_cleared", "Cart cleared")
	return nil
}

func (m *Module) handleCheckoutCompleted(_ context.Context, event events.CheckoutCompletedEvent, _ *mono.Msg) error {
	log.Printf("[notifier] Checkout completed: order %s, total %.2f", event.OrderID, event.Total)
	m.record("checkout_completed", fmt.Sprintf("Checkout completed successfully! Confirmation: %s", event.Confirmation))
	return nil
}

func (m *Module) record(notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, Notification{
		Type:      notificationType,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// Notifications returns a copy of all recorded notifications.
func (m *Module) Notifications() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// Start starts the notifier module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[notifier] Module started - listening for cart and checkout events")
	return nil
}

// Stop stops the notifier module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[notifier] Module stopped")
	return nil
}
