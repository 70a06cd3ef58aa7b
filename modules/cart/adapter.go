package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/storefront/domain/product"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// cartAdapter wraps ServiceContainer for type-safe cross-module
// communication. It implements the CartPort interface.
type cartAdapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new adapter for cart services. container is the
// ServiceContainer from the cart module received via
// SetDependencyServiceContainer.
func NewAdapter(container mono.ServiceContainer) CartPort {
	if container == nil {
		panic("cart adapter requires non-nil ServiceContainer")
	}
	return &cartAdapter{container: container}
}

// AddItem adds a product to the cart via the add service.
func (a *cartAdapter) AddItem(ctx context.Context, p product.Product) (*AddItemResponse, error) {
	req := AddItemRequest{Product: p}
	var resp AddItemResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add service call failed: %w", err)
	}
	return &resp, nil
}

// RemoveItem removes a line item via the remove service.
func (a *cartAdapter) RemoveItem(ctx context.Context, productID int) (*RemoveItemResponse, error) {
	req := RemoveItemRequest{ProductID: productID}
	var resp RemoveItemResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "remove", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("remove service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateQuantity sets a line item quantity via the update-quantity service.
func (a *cartAdapter) UpdateQuantity(ctx context.Context, productID, quantity int) (*UpdateQuantityResponse, error) {
	req := UpdateQuantityRequest{ProductID: productID, Quantity: quantity}
	var resp UpdateQuantityResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-quantity", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-quantity service call failed: %w", err)
	}
	return &resp, nil
}

// Clear empties the cart via the clear service.
func (a *cartAdapter) Clear(ctx context.Context) (*ClearCartResponse, error) {
	req := ClearCartRequest{}
	var resp ClearCartResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "clear", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("clear service call failed: %w", err)
	}
	return &resp, nil
}

// Get reads the cart state via the get service.
func (a *cartAdapter) Get(ctx context.Context) (*CartResponse, error) {
	req := GetCartRequest{}
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get service call failed: %w", err)
	}
	return &resp, nil
}

// Open presents the cart sidebar via the open service.
func (a *cartAdapter) Open(ctx context.Context) (*SidebarResponse, error) {
	return a.sidebar(ctx, "open")
}

// Close hides the cart sidebar via the close service.
func (a *cartAdapter) Close(ctx context.Context) (*SidebarResponse, error) {
	return a.sidebar(ctx, "close")
}

// Toggle flips the cart sidebar via the toggle service.
func (a *cartAdapter) Toggle(ctx context.Context) (*SidebarResponse, error) {
	return a.sidebar(ctx, "toggle")
}

func (a *cartAdapter) sidebar(ctx context.Context, service string) (*SidebarResponse, error) {
	req := SidebarRequest{}
	var resp SidebarResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, service, json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", service, err)
	}
	return &resp, nil
}
