package cart

import (
	"context"

	domain "github.com/example/storefront/domain/cart"
	"github.com/example/storefront/domain/product"
)

// AddItemRequest is the request for adding a product to the cart.
type AddItemRequest struct {
	Product product.Product `json:"product"`
}

// AddItemResponse is the response after adding a product.
type AddItemResponse struct {
	Item       domain.LineItem `json:"item"`
	TotalItems int             `json:"total_items"`
}

// RemoveItemRequest is the request for removing a line item.
type RemoveItemRequest struct {
	ProductID int `json:"product_id"`
}

// RemoveItemResponse is the response after a removal request.
type RemoveItemResponse struct {
	Removed    bool `json:"removed"`
	TotalItems int  `json:"total_items"`
}

// UpdateQuantityRequest is the request for setting a line item quantity.
type UpdateQuantityRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// UpdateQuantityResponse is the response after a quantity update.
type UpdateQuantityResponse struct {
	Updated    bool `json:"updated"`
	TotalItems int  `json:"total_items"`
}

// ClearCartRequest is the request for emptying the cart.
type ClearCartRequest struct{}

// ClearCartResponse is the response after emptying the cart.
type ClearCartResponse struct {
	ItemsRemoved int `json:"items_removed"`
}

// GetCartRequest is the request for reading the cart state.
type GetCartRequest struct{}

// CartResponse is the full cart state with derived aggregates.
type CartResponse struct {
	Items      []domain.LineItem `json:"items"`
	IsOpen     bool              `json:"is_open"`
	TotalPrice float64           `json:"total_price"`
	TotalItems int               `json:"total_items"`
}

// SidebarRequest is the request for a sidebar visibility transition.
type SidebarRequest struct{}

// SidebarResponse reports the sidebar visibility after a transition.
type SidebarResponse struct {
	IsOpen bool `json:"is_open"`
}

// CartPort is the contract driving adapters use to interact with the
// cart module.
type CartPort interface {
	AddItem(ctx context.Context, p product.Product) (*AddItemResponse, error)
	RemoveItem(ctx context.Context, productID int) (*RemoveItemResponse, error)
	UpdateQuantity(ctx context.Context, productID, quantity int) (*UpdateQuantityResponse, error)
	Clear(ctx context.Context) (*ClearCartResponse, error)
	Get(ctx context.Context) (*CartResponse, error)
	Open(ctx context.Context) (*SidebarResponse, error)
	Close(ctx context.Context) (*SidebarResponse, error)
	Toggle(ctx context.Context) (*SidebarResponse, error)
}
