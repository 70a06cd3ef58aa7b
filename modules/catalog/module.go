package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/redis/go-redis/v9"
)

// Module provides the catalog services over the upstream product source,
// with an optional Redis cache.
type Module struct {
	client    *Client
	cache     *Cache
	service   *Service
	baseURL   string
	redisAddr string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new catalog module. The upstream base URL comes
// from CATALOG_BASE_URL; caching is enabled when CATALOG_REDIS_ADDR is
// set.
func NewModule() *Module {
	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Module{
		baseURL:   baseURL,
		redisAddr: os.Getenv("CATALOG_REDIS_ADDR"),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// RegisterServices registers the catalog request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listProducts,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getProduct,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "top", json.Unmarshal, json.Marshal, m.topProducts,
	); err != nil {
		return fmt.Errorf("failed to register top service: %w", err)
	}

	log.Printf("[catalog] Registered services: services.catalog.{list,get,top}")
	return nil
}

// Start initializes the upstream client and the optional Redis cache. A
// cache that cannot be reached disables caching instead of failing the
// module.
func (m *Module) Start(ctx context.Context) error {
	m.client = NewClient(m.baseURL)

	if m.redisAddr != "" {
		cache := NewCache(redis.NewClient(&redis.Options{Addr: m.redisAddr}), "catalog:", 0)
		if err := cache.Ping(ctx); err != nil {
			log.Printf("[catalog] Warning: Redis unavailable at %s, caching disabled: %v", m.redisAddr, err)
			_ = cache.Close()
		} else {
			m.cache = cache
			log.Printf("[catalog] Cache enabled via Redis at %s", m.redisAddr)
		}
	}

	m.service = NewService(m.client, m.cache)

	log.Printf("[catalog] Module started, upstream: %s", m.baseURL)
	return nil
}

// Stop closes the Redis connection if caching was enabled.
func (m *Module) Stop(_ context.Context) error {
	if m.cache != nil {
		if err := m.cache.Close(); err != nil {
			return fmt.Errorf("failed to close cache: %w", err)
		}
	}
	log.Println("[catalog] Module stopped")
	return nil
}

// Health performs a health check on the catalog module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "service not initialized",
		}
	}

	details := map[string]any{
		"upstream": m.baseURL,
		"cache":    m.cache != nil,
	}
	if m.cache != nil {
		if err := m.cache.Ping(ctx); err != nil {
			details["cache_error"] = err.Error()
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: details,
	}
}
