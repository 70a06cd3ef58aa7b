package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/storefront/events"
	"github.com/example/storefront/modules/cart"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the checkout services on top of the cart module.
type Module struct {
	service  *Service
	cartPort cart.CartPort
	eventBus mono.EventBus
	delay    time.Duration
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates a new checkout module. The simulated processing
// delay comes from CHECKOUT_DELAY_MS.
func NewModule() *Module {
	delay := DefaultDelay
	if v := os.Getenv("CHECKOUT_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}
	return &Module{delay: delay}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "checkout"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"cart"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "cart" {
		m.cartPort = cart.NewAdapter(container)
	}
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CheckoutCompletedV1.ToBase(),
	}
}

// RegisterServices registers the checkout request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "start", json.Unmarshal, json.Marshal, m.startCheckout,
	); err != nil {
		return fmt.Errorf("failed to register start service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "status", json.Unmarshal, json.Marshal, m.checkoutStatus,
	); err != nil {
		return fmt.Errorf("failed to register status service: %w", err)
	}

	log.Printf("[checkout] Registered services: services.checkout.{start,status}")
	return nil
}

// startCheckout handles the checkout.start service request.
func (m *Module) startCheckout(ctx context.Context, _ StartCheckoutRequest, _ *mono.Msg) (OrderResponse, error) {
	order, err := m.service.Start(ctx)
	if err != nil {
		return OrderResponse{}, err
	}

	if m.eventBus != nil {
		event := events.CheckoutCompletedEvent{
			OrderID:      order.OrderID,
			Confirmation: order.Confirmation,
			Subtotal:     order.Subtotal,
			Tax:          order.Tax,
			Total:        order.Total,
			ItemCount:    order.ItemCount,
			CompletedAt:  order.CompletedAt,
		}
		if err := events.CheckoutCompletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[checkout] Warning: failed to publish CheckoutCompleted event for order %s: %v", order.OrderID, err)
		}
	}

	return *order, nil
}

// checkoutStatus handles the checkout.status service request.
func (m *Module) checkoutStatus(_ context.Context, _ StatusRequest, _ *mono.Msg) (StatusResponse, error) {
	return *m.service.Status(), nil
}

// Start initializes the checkout service.
func (m *Module) Start(_ context.Context) error {
	if m.cartPort == nil {
		return fmt.Errorf("cartPort dependency not set")
	}

	service, err := NewService(m.cartPort, m.delay)
	if err != nil {
		return fmt.Errorf("failed to create checkout service: %w", err)
	}
	m.service = service

	if m.eventBus == nil {
		log.Println("[checkout] Warning: eventBus not set, events will not be published")
	}

	log.Printf("[checkout] Module started with %s processing delay (depends on: cart)", m.delay)
	return nil
}

// Stop stops the checkout module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[checkout] Module stopped")
	return nil
}
