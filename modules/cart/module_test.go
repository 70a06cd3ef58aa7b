package cart

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestModule_Health(t *testing.T) {
	ctx := context.Background()

	t.Run("unhealthy before start", func(t *testing.T) {
		m := NewModule()

		status := m.Health(ctx)
		if status.Healthy {
			t.Error("Health() on an unstarted module should not be healthy")
		}
	})

	t.Run("unhealthy when database is open but store never initialized", func(t *testing.T) {
		// Start assigns db before running migrations, so a migration
		// failure leaves the module in exactly this state.
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			t.Fatalf("failed to open test database: %v", err)
		}
		m := &Module{db: db, dbPath: ":memory:"}

		status := m.Health(ctx)
		if status.Healthy {
			t.Error("Health() without a store should not be healthy")
		}
	})

	t.Run("healthy after full initialization", func(t *testing.T) {
		repo := setupTestRepo(t)
		store := NewStore(repo)
		store.Load(ctx)
		m := &Module{db: repo.db, repo: repo, store: store, dbPath: ":memory:"}

		status := m.Health(ctx)
		if !status.Healthy {
			t.Errorf("Health() = %+v, want healthy", status)
		}
		if status.Details["total_items"] != 0 {
			t.Errorf("total_items = %v, want 0", status.Details["total_items"])
		}
	})
}
