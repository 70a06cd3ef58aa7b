package catalog

import (
	"context"

	"github.com/example/storefront/domain/product"
)

// ListProductsRequest is the request for listing products.
type ListProductsRequest struct{}

// ListProductsResponse is the response containing the product listing.
type ListProductsResponse struct {
	Products []product.Product `json:"products"`
	Total    int               `json:"total"`
}

// GetProductRequest is the request for a single product.
type GetProductRequest struct {
	ID int `json:"id"`
}

// TopProductsRequest is the request for the featured product ranking.
type TopProductsRequest struct{}

// TopProductsResponse is the response containing the ranked products.
type TopProductsResponse struct {
	Products []product.Product `json:"products"`
}

// CatalogPort is the contract driving adapters use to interact with the
// catalog module.
type CatalogPort interface {
	List(ctx context.Context) (*ListProductsResponse, error)
	Get(ctx context.Context, id int) (*product.Product, error)
	Top(ctx context.Context) (*TopProductsResponse, error)
}
