package cart

import (
	"context"
	"reflect"
	"testing"

	domain "github.com/example/storefront/domain/cart"
	"github.com/example/storefront/domain/product"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRepo creates a repository over an in-memory SQLite database.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	repo := NewRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return repo
}

func sampleItems() []domain.LineItem {
	return []domain.LineItem{
		{
			Product: product.Product{
				ID:          7,
				Title:       "Mechanical Keyboard",
				Price:       89.5,
				Image:       "https://example.com/kb.png",
				Category:    "electronics",
				Description: "Tenkeyless, brown switches",
				Rating:      product.Rating{Rate: 4.7, Count: 412},
			},
			Quantity: 2,
		},
		{
			Product: product.Product{
				ID:          3,
				Title:       "Canvas Backpack",
				Price:       34.99,
				Image:       "https://example.com/bp.png",
				Category:    "accessories",
				Description: "20L, water resistant",
				Rating:      product.Rating{Rate: 4.1, Count: 88},
			},
			Quantity: 1,
		},
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	items := sampleItems()

	if err := repo.Save(ctx, items); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(loaded, items) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", loaded, items)
	}

	// Re-persisting a loaded snapshot must be stable.
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	again, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if !reflect.DeepEqual(again, items) {
		t.Errorf("second round trip mismatch:\n got: %+v\nwant: %+v", again, items)
	}
}

func TestRepository_SaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	if err := repo.Save(ctx, sampleItems()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	replacement := []domain.LineItem{
		{Product: product.Product{ID: 99, Title: "Desk Lamp", Price: 18}, Quantity: 4},
	}
	if err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 item after replacement, got %d", len(loaded))
	}
	if loaded[0].ID != 99 || loaded[0].Quantity != 4 {
		t.Errorf("unexpected item after replacement: %+v", loaded[0])
	}
}

func TestRepository_SaveEmpty(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	if err := repo.Save(ctx, sampleItems()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty cart, got %d items", len(loaded))
	}
}

func TestRepository_LoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	// Product IDs deliberately out of numeric order: position wins.
	items := []domain.LineItem{
		{Product: product.Product{ID: 20, Title: "B", Price: 1}, Quantity: 1},
		{Product: product.Product{ID: 5, Title: "A", Price: 2}, Quantity: 2},
		{Product: product.Product{ID: 13, Title: "C", Price: 3}, Quantity: 3},
	}
	if err := repo.Save(ctx, items); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantOrder := []int{20, 5, 13}
	for i, want := range wantOrder {
		if loaded[i].ID != want {
			t.Errorf("position %d: expected product %d, got %d", i, want, loaded[i].ID)
		}
	}
}

func TestRepository_LoadEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected 0 items, got %d", len(loaded))
	}
}
