package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/example/storefront/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module provides the cart services backed by the cart store and its
// GORM + SQLite persistence.
type Module struct {
	db       *gorm.DB
	repo     *Repository
	store    *Store
	eventBus mono.EventBus
	dbPath   string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new cart module.
func NewModule() *Module {
	dbPath := os.Getenv("CART_DB_PATH")
	if dbPath == "" {
		dbPath = "cart.db"
	}
	return &Module{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cart"
}

// Store exposes the cart state container so in-process consumers can
// subscribe to change notifications.
func (m *Module) Store() *Store {
	return m.store
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ItemAddedV1.ToBase(),
		events.ItemRemovedV1.ToBase(),
		events.QuantityUpdatedV1.ToBase(),
		events.CartClearedV1.ToBase(),
	}
}

// RegisterServices registers the cart request-reply services.
// The framework prefixes service names with "services.cart." in the NATS
// subject.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add", json.Unmarshal, json.Marshal, m.addItem,
	); err != nil {
		return fmt.Errorf("failed to register add service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove", json.Unmarshal, json.Marshal, m.removeItem,
	); err != nil {
		return fmt.Errorf("failed to register remove service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-quantity", json.Unmarshal, json.Marshal, m.updateQuantity,
	); err != nil {
		return fmt.Errorf("failed to register update-quantity service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear", json.Unmarshal, json.Marshal, m.clearCart,
	); err != nil {
		return fmt.Errorf("failed to register clear service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getCart,
	); err != nil {
		return fmt.Errorf("failed to register get service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "open", json.Unmarshal, json.Marshal, m.openSidebar,
	); err != nil {
		return fmt.Errorf("failed to register open service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "close", json.Unmarshal, json.Marshal, m.closeSidebar,
	); err != nil {
		return fmt.Errorf("failed to register close service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "toggle", json.Unmarshal, json.Marshal, m.toggleSidebar,
	); err != nil {
		return fmt.Errorf("failed to register toggle service: %w", err)
	}

	log.Printf("[cart] Registered services: services.cart.{add,remove,update-quantity,clear,get,open,close,toggle}")
	return nil
}

// Start opens the database, runs migrations and loads the persisted cart
// into the store. The sidebar always starts closed.
func (m *Module) Start(ctx context.Context) error {
	log.Printf("[cart] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	m.repo = NewRepository(db)
	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.store = NewStore(m.repo)
	m.store.Load(ctx)

	if m.eventBus == nil {
		log.Println("[cart] Warning: eventBus not set, events will not be published")
	}

	log.Printf("[cart] Module started with %d persisted line items", m.store.TotalItems())
	return nil
}

// Stop gracefully closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	log.Println("[cart] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[cart] Database connection closed")
	return nil
}

// Health performs a health check on the cart module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil || m.store == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "module not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver":      "sqlite",
			"path":        m.dbPath,
			"total_items": m.store.TotalItems(),
		},
	}
}
