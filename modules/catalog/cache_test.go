package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/example/storefront/domain/product"
	"github.com/redis/go-redis/v9"
)

// These tests require Redis running on localhost:6379 and skip otherwise.
const testRedisAddr = "localhost:6379"

// setupTestCache creates a cache instance for testing.
// Returns the cache and a cleanup function.
func setupTestCache(t *testing.T, prefix string) (*Cache, func()) {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: testRedisAddr,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	// Clean up any existing keys with this prefix
	cleanupKeys(ctx, client, prefix+"*")

	cache := NewCache(client, prefix, time.Minute)

	cleanup := func() {
		cleanupKeys(ctx, client, prefix+"*")
		client.Close()
	}

	return cache, cleanup
}

// cleanupKeys removes all keys matching the pattern.
func cleanupKeys(ctx context.Context, client *redis.Client, pattern string) {
	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}

func TestCache_SetAndGet(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:setget:")
	defer cleanup()

	ctx := context.Background()

	want := product.Product{
		ID:    7,
		Title: "Backpack",
		Price: 20,
		Rating: product.Rating{
			Rate:  4.5,
			Count: 10,
		},
	}

	if err := cache.Set(ctx, "id:7", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got product.Product
	found, err := cache.Get(ctx, "id:7", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() returned found = false, want true")
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCache_GetMiss(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:miss:")
	defer cleanup()

	ctx := context.Background()

	var result product.Product
	found, err := cache.Get(ctx, "nonexistent", &result)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() returned found = true for nonexistent key, want false")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:ttl:")
	defer cleanup()

	cache.ttl = 100 * time.Millisecond
	ctx := context.Background()

	if err := cache.Set(ctx, "expiring", catalogFixture()); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var result []product.Product
	found, err := cache.Get(ctx, "expiring", &result)
	if err != nil || !found {
		t.Fatalf("Get() immediately after Set: found = %v, err = %v", found, err)
	}

	time.Sleep(200 * time.Millisecond)

	found, err = cache.Get(ctx, "expiring", &result)
	if err != nil {
		t.Fatalf("Get() after expiration error = %v", err)
	}
	if found {
		t.Error("Get() after TTL expiration should return found = false")
	}
}

func TestService_List_CacheAside(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:aside:")
	defer cleanup()

	ctx := context.Background()
	source := &mockSource{products: catalogFixture()}
	svc := NewService(source, cache)

	// Cold cache: the first listing goes upstream and populates Redis.
	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if source.fetchAllN != 1 {
		t.Fatalf("upstream fetches after miss = %d, want 1", source.fetchAllN)
	}

	var cached []product.Product
	found, err := cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("listing should be cached after the first List()")
	}

	// Warm cache: the second listing is served without an upstream call.
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if source.fetchAllN != 1 {
		t.Errorf("upstream fetches after hit = %d, want 1", source.fetchAllN)
	}
	if len(second) != len(first) {
		t.Errorf("cached listing has %d products, want %d", len(second), len(first))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("position %d: cached = %+v, upstream = %+v", i, second[i], first[i])
		}
	}
}

func TestService_GetByID_CacheAside(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:aside-id:")
	defer cleanup()

	ctx := context.Background()
	source := &mockSource{products: catalogFixture()}
	svc := NewService(source, cache)

	p, err := svc.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if source.fetchByIDN != 1 {
		t.Fatalf("upstream fetches after miss = %d, want 1", source.fetchByIDN)
	}

	again, err := svc.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if source.fetchByIDN != 1 {
		t.Errorf("upstream fetches after hit = %d, want 1", source.fetchByIDN)
	}
	if again.Title != p.Title || again.Price != p.Price {
		t.Errorf("cached product = %+v, upstream = %+v", again, p)
	}
}

func TestCache_Ping(t *testing.T) {
	cache, cleanup := setupTestCache(t, "test:catalog:ping:")
	defer cleanup()

	if err := cache.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
