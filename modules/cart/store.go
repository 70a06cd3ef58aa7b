// Package cart provides the cart state container, its persistence adapter
// and the cart services exposed to other modules.
package cart

import (
	"context"
	"log"
	"sync"

	domain "github.com/example/storefront/domain/cart"
	"github.com/example/storefront/domain/product"
)

// Listener receives a snapshot of the cart state after each mutation.
// Listeners are invoked synchronously from the mutating call.
type Listener func(domain.Snapshot)

// Store is the single source of truth for cart contents and sidebar
// visibility. All mutations go through its methods; each mutation
// persists the line items best-effort and notifies subscribers with a
// fresh snapshot. Persistence failures are logged, never propagated:
// in-memory state stays correct even when durability is unavailable.
type Store struct {
	mu        sync.RWMutex
	items     []domain.LineItem
	isOpen    bool
	storage   Storage
	listeners map[int]Listener
	nextSubID int
}

// NewStore creates a cart store backed by the given storage. A nil
// storage yields a purely in-memory cart.
func NewStore(storage Storage) *Store {
	return &Store{
		items:     make([]domain.LineItem, 0),
		storage:   storage,
		listeners: make(map[int]Listener),
	}
}

// Load initializes the cart from persisted line items. A load failure or
// malformed record is treated as "no prior cart": the store starts empty
// rather than failing. The sidebar always starts closed.
func (s *Store) Load(ctx context.Context) {
	if s.storage == nil {
		return
	}

	items, err := s.storage.Load(ctx)
	if err != nil {
		log.Printf("[cart] Warning: failed to load persisted cart, starting empty: %v", err)
		items = nil
	}

	// Drop rows that violate the quantity invariant.
	valid := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			log.Printf("[cart] Warning: dropping persisted item %d with quantity %d", item.ID, item.Quantity)
			continue
		}
		valid = append(valid, item)
	}

	s.mu.Lock()
	s.items = valid
	s.isOpen = false
	s.mu.Unlock()
}

// Add adds a product to the cart. If a line item with the same product ID
// already exists its quantity is incremented by one and its stored
// title/price/image are deliberately kept as-is; otherwise a new line
// item with quantity 1 is appended. Returns the resulting line item.
func (s *Store) Add(ctx context.Context, p product.Product) domain.LineItem {
	s.mu.Lock()
	var result domain.LineItem
	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			result = s.items[i]
			found = true
			break
		}
	}
	if !found {
		result = domain.LineItem{Product: p, Quantity: 1}
		s.items = append(s.items, result)
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return result
}

// Remove deletes the line item with the given product ID. Removing an
// absent ID is a silent no-op, not an error. Returns whether an item was
// actually removed.
func (s *Store) Remove(ctx context.Context, productID int) bool {
	s.mu.Lock()
	removed := false
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID == productID {
			removed = true
			continue
		}
		filtered = append(filtered, item)
	}
	s.items = filtered
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return removed
}

// UpdateQuantity sets a line item's quantity to exactly the given value.
// A quantity of zero or less is an explicit removal request. Unknown IDs
// are a silent no-op. Returns whether a matching item existed.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) bool {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			found = true
			break
		}
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return found
}

// Clear empties the cart unconditionally. Returns the number of line
// items that were removed.
func (s *Store) Clear(ctx context.Context) int {
	s.mu.Lock()
	removed := len(s.items)
	s.items = make([]domain.LineItem, 0)
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
	return removed
}

// TotalPrice returns the sum of price x quantity over all line items.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.TotalPrice(s.items)
}

// TotalItems returns the sum of quantities over all line items.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.TotalItems(s.items)
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// IsOpen reports whether the cart sidebar is presented.
func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOpen
}

// Open presents the cart sidebar. Transient UI state, never persisted.
func (s *Store) Open() {
	s.mu.Lock()
	s.isOpen = true
	s.mu.Unlock()
	s.notify()
}

// Close hides the cart sidebar.
func (s *Store) Close() {
	s.mu.Lock()
	s.isOpen = false
	s.mu.Unlock()
	s.notify()
}

// Toggle flips the cart sidebar visibility and returns the new state.
func (s *Store) Toggle() bool {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	open := s.isOpen
	s.mu.Unlock()
	s.notify()
	return open
}

// Snapshot returns an immutable view of the full cart state including
// derived aggregates.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers a listener that is notified synchronously after
// every mutation. The returned cancel function unregisters it.
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// persist writes the current line items through the storage adapter.
// Durability is best-effort: errors are logged and swallowed so the
// in-memory state keeps working for the current session.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}

	items := s.Items()
	if err := s.storage.Save(ctx, items); err != nil {
		log.Printf("[cart] Warning: failed to persist cart (%d items): %v", len(items), err)
	}
}

// notify invokes all registered listeners with a fresh snapshot. The
// callbacks run outside the store lock.
func (s *Store) notify() {
	s.mu.RLock()
	snapshot := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

func (s *Store) snapshotLocked() domain.Snapshot {
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return domain.Snapshot{
		Items:      items,
		IsOpen:     s.isOpen,
		TotalPrice: domain.TotalPrice(s.items),
		TotalItems: domain.TotalItems(s.items),
	}
}
