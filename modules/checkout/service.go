// Package checkout provides the simulated checkout flow: a fixed,
// non-cancellable processing delay followed by an unconditional success
// that empties the cart. It stands in for a real payment integration.
package checkout

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/storefront/modules/cart"
	"github.com/google/uuid"
	nanoid "github.com/jaevor/go-nanoid"
)

// taxRate is the display tax applied on top of the cart subtotal. This is
// consumer-layer policy: the cart store itself only reports raw totals.
const taxRate = 0.10

const confirmationLength = 12

// DefaultDelay is the simulated processing time when none is configured.
const DefaultDelay = 2 * time.Second

// Service runs simulated checkouts against the cart port. Only one
// checkout can run at a time; once started, a checkout cannot be aborted
// and always completes after the configured delay.
type Service struct {
	cartPort cart.CartPort
	delay    time.Duration
	genCode  func() string

	mu         sync.Mutex
	inProgress bool
	lastOrder  *OrderResponse
}

// NewService creates a checkout service.
func NewService(cartPort cart.CartPort, delay time.Duration) (*Service, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	genCode, err := nanoid.Standard(confirmationLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create confirmation generator: %w", err)
	}

	return &Service{
		cartPort: cartPort,
		delay:    delay,
		genCode:  genCode,
	}, nil
}

// Start runs a checkout: it snapshots the cart, waits the processing
// delay, then unconditionally clears the cart and closes the sidebar.
// A second Start while one is running returns ErrCheckoutInProgress; an
// empty cart returns ErrEmptyCart.
func (s *Service) Start(ctx context.Context) (*OrderResponse, error) {
	s.mu.Lock()
	if s.inProgress {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.inProgress = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inProgress = false
		s.mu.Unlock()
	}()

	snapshot, err := s.cartPort.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if snapshot.TotalItems == 0 {
		return nil, ErrEmptyCart
	}

	// Simulated payment processing. Deliberately not tied to ctx: once
	// triggered the checkout always resolves after the fixed delay.
	time.Sleep(s.delay)

	if _, err := s.cartPort.Clear(ctx); err != nil {
		log.Printf("[checkout] Warning: failed to clear cart after checkout: %v", err)
	}
	if _, err := s.cartPort.Close(ctx); err != nil {
		log.Printf("[checkout] Warning: failed to close cart sidebar: %v", err)
	}

	subtotal := snapshot.TotalPrice
	tax := subtotal * taxRate
	order := &OrderResponse{
		OrderID:      uuid.New().String(),
		Confirmation: s.genCode(),
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        subtotal + tax,
		ItemCount:    snapshot.TotalItems,
		CompletedAt:  time.Now(),
	}

	s.mu.Lock()
	s.lastOrder = order
	s.mu.Unlock()

	return order, nil
}

// Status reports whether a checkout is running and the last completed
// order.
func (s *Service) Status() *StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &StatusResponse{
		InProgress: s.inProgress,
		LastOrder:  s.lastOrder,
	}
}
