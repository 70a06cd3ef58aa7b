// Package catalog provides the product catalog services: an HTTP client
// for the upstream product source with a cache-aside layer on top.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/storefront/domain/product"
)

// DefaultBaseURL is the upstream product source used when none is
// configured.
const DefaultBaseURL = "https://fakestoreapi.com"

const clientTimeout = 10 * time.Second

// Client fetches product records from the upstream catalog. The catalog
// is read-only to this service; products are never written back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// FetchAll retrieves the full product listing.
func (c *Client) FetchAll(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	if err := c.getJSON(ctx, c.baseURL+"/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchByID retrieves a single product. Returns ErrProductNotFound when
// the upstream has no product with that id.
func (c *Client) FetchByID(ctx context.Context, id int) (*product.Product, error) {
	var p product.Product
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &p); err != nil {
		return nil, err
	}
	// The upstream answers some unknown ids with an empty body instead of
	// a 404: treat a zero id as not found.
	if p.ID == 0 {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrProductNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: upstream returned %d", ErrUpstreamUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected catalog response status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
