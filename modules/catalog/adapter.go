package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/storefront/domain/product"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// catalogAdapter wraps ServiceContainer for type-safe cross-module
// communication. It implements the CatalogPort interface.
type catalogAdapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new adapter for catalog services.
func NewAdapter(container mono.ServiceContainer) CatalogPort {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &catalogAdapter{container: container}
}

// List retrieves the product listing via the list service.
func (a *catalogAdapter) List(ctx context.Context) (*ListProductsResponse, error) {
	req := ListProductsRequest{}
	var resp ListProductsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list service call failed: %w", err)
	}
	return &resp, nil
}

// Get retrieves a single product via the get service.
func (a *catalogAdapter) Get(ctx context.Context, id int) (*product.Product, error) {
	req := GetProductRequest{ID: id}
	var resp product.Product
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get service call failed: %w", err)
	}
	return &resp, nil
}

// Top retrieves the ranked featured products via the top service.
func (a *catalogAdapter) Top(ctx context.Context) (*TopProductsResponse, error) {
	req := TopProductsRequest{}
	var resp TopProductsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "top", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("top service call failed: %w", err)
	}
	return &resp, nil
}
