package cart

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/storefront/events"
	"github.com/go-monolith/mono"
)

// addItem handles the cart.add service request.
func (m *Module) addItem(ctx context.Context, req AddItemRequest, _ *mono.Msg) (AddItemResponse, error) {
	if req.Product.ID <= 0 {
		return AddItemResponse{}, fmt.Errorf("product id is required")
	}

	item := m.store.Add(ctx, req.Product)

	if m.eventBus != nil {
		event := events.ItemAddedEvent{
			ProductID:  item.ID,
			Title:      item.Title,
			Quantity:   item.Quantity,
			TotalItems: m.store.TotalItems(),
			AddedAt:    time.Now(),
		}
		if err := events.ItemAddedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[cart] Warning: failed to publish ItemAdded event for product %d: %v", item.ID, err)
		}
	}

	return AddItemResponse{
		Item:       item,
		TotalItems: m.store.TotalItems(),
	}, nil
}

// removeItem handles the cart.remove service request. Removing an absent
// product is not an error.
func (m *Module) removeItem(ctx context.Context, req RemoveItemRequest, _ *mono.Msg) (RemoveItemResponse, error) {
	removed := m.store.Remove(ctx, req.ProductID)

	if removed && m.eventBus != nil {
		event := events.ItemRemovedEvent{
			ProductID: req.ProductID,
			RemovedAt: time.Now(),
		}
		if err := events.ItemRemovedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[cart] Warning: failed to publish ItemRemoved event for product %d: %v", req.ProductID, err)
		}
	}

	return RemoveItemResponse{
		Removed:    removed,
		TotalItems: m.store.TotalItems(),
	}, nil
}

// updateQuantity handles the cart.update-quantity service request. A
// quantity of zero or less removes the item.
func (m *Module) updateQuantity(ctx context.Context, req UpdateQuantityRequest, _ *mono.Msg) (UpdateQuantityResponse, error) {
	updated := m.store.UpdateQuantity(ctx, req.ProductID, req.Quantity)

	if updated && m.eventBus != nil {
		event := events.QuantityUpdatedEvent{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			UpdatedAt: time.Now(),
		}
		if err := events.QuantityUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[cart] Warning: failed to publish QuantityUpdated event for product %d: %v", req.ProductID, err)
		}
	}

	return UpdateQuantityResponse{
		Updated:    updated,
		TotalItems: m.store.TotalItems(),
	}, nil
}

// clearCart handles the cart.clear service request.
func (m *Module) clearCart(ctx context.Context, _ ClearCartRequest, _ *mono.Msg) (ClearCartResponse, error) {
	removed := m.store.Clear(ctx)

	if m.eventBus != nil {
		event := events.CartClearedEvent{
			ItemsRemoved: removed,
			ClearedAt:    time.Now(),
		}
		if err := events.CartClearedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[cart] Warning: failed to publish CartCleared event: %v", err)
		}
	}

	return ClearCartResponse{ItemsRemoved: removed}, nil
}

// getCart handles the cart.get service request.
func (m *Module) getCart(_ context.Context, _ GetCartRequest, _ *mono.Msg) (CartResponse, error) {
	snapshot := m.store.Snapshot()
	return CartResponse{
		Items:      snapshot.Items,
		IsOpen:     snapshot.IsOpen,
		TotalPrice: snapshot.TotalPrice,
		TotalItems: snapshot.TotalItems,
	}, nil
}

// openSidebar handles the cart.open service request.
func (m *Module) openSidebar(_ context.Context, _ SidebarRequest, _ *mono.Msg) (SidebarResponse, error) {
	m.store.Open()
	return SidebarResponse{IsOpen: true}, nil
}

// closeSidebar handles the cart.close service request.
func (m *Module) closeSidebar(_ context.Context, _ SidebarRequest, _ *mono.Msg) (SidebarResponse, error) {
	m.store.Close()
	return SidebarResponse{IsOpen: false}, nil
}

// toggleSidebar handles the cart.toggle service request.
func (m *Module) toggleSidebar(_ context.Context, _ SidebarRequest, _ *mono.Msg) (SidebarResponse, error) {
	return SidebarResponse{IsOpen: m.store.Toggle()}, nil
}
