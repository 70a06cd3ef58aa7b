package catalog

import (
	"context"
	"fmt"

	"github.com/example/storefront/domain/product"
	"github.com/go-monolith/mono"
)

// listProducts handles the catalog.list service request.
func (m *Module) listProducts(ctx context.Context, _ ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products, err := m.service.List(ctx)
	if err != nil {
		return ListProductsResponse{}, err
	}
	return ListProductsResponse{
		Products: products,
		Total:    len(products),
	}, nil
}

// getProduct handles the catalog.get service request.
func (m *Module) getProduct(ctx context.Context, req GetProductRequest, _ *mono.Msg) (product.Product, error) {
	if req.ID <= 0 {
		return product.Product{}, fmt.Errorf("id is required")
	}

	p, err := m.service.GetByID(ctx, req.ID)
	if err != nil {
		return product.Product{}, err
	}
	return *p, nil
}

// topProducts handles the catalog.top service request.
func (m *Module) topProducts(ctx context.Context, _ TopProductsRequest, _ *mono.Msg) (TopProductsResponse, error) {
	products, err := m.service.Top(ctx)
	if err != nil {
		return TopProductsResponse{}, err
	}
	return TopProductsResponse{Products: products}, nil
}
