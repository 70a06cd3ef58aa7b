package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/example/storefront/domain/product"
	"golang.org/x/sync/singleflight"
)

// ProductSource abstracts the upstream catalog so the service can be
// tested against a mock.
type ProductSource interface {
	FetchAll(ctx context.Context) ([]product.Product, error)
	FetchByID(ctx context.Context, id int) (*product.Product, error)
}

// Service provides catalog reads with optional caching. Cache errors are
// logged and the upstream is consulted directly, so a broken cache never
// breaks browsing.
type Service struct {
	source  ProductSource
	cache   *Cache // nil when caching is disabled
	sfGroup singleflight.Group
}

// NewService creates a catalog service. cache may be nil.
func NewService(source ProductSource, cache *Cache) *Service {
	return &Service{
		source: source,
		cache:  cache,
	}
}

const listCacheKey = "list"

func cacheKeyByID(id int) string {
	return "id:" + strconv.Itoa(id)
}

// List returns the full product listing, cache-aside. Concurrent cache
// misses collapse into a single upstream fetch via singleflight.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	if s.cache != nil {
		var cached []product.Product
		found, err := s.cache.Get(ctx, listCacheKey, &cached)
		if err != nil {
			log.Printf("[catalog] Cache error for list: %v", err)
		}
		if found {
			return cached, nil
		}
	}

	val, err, _ := s.sfGroup.Do(listCacheKey, func() (any, error) {
		return s.source.FetchAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	products := val.([]product.Product)

	if s.cache != nil {
		if err := s.cache.Set(ctx, listCacheKey, products); err != nil {
			log.Printf("[catalog] Warning: failed to cache product list: %v", err)
		}
	}
	return products, nil
}

// GetByID returns a single product, cache-aside.
func (s *Service) GetByID(ctx context.Context, id int) (*product.Product, error) {
	key := cacheKeyByID(id)

	if s.cache != nil {
		var cached product.Product
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[catalog] Cache error for product %d: %v", id, err)
		}
		if found {
			return &cached, nil
		}
	}

	val, err, _ := s.sfGroup.Do(key, func() (any, error) {
		return s.source.FetchByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	p := val.(*product.Product)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p); err != nil {
			log.Printf("[catalog] Warning: failed to cache product %d: %v", id, err)
		}
	}
	return p, nil
}

// Top returns the ranked featured products: rating descending, ties
// broken by price ascending, at most ten entries.
func (s *Service) Top(ctx context.Context) ([]product.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return product.TopProducts(products), nil
}
