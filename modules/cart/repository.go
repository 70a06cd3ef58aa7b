package cart

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/storefront/domain/cart"
	"github.com/example/storefront/domain/product"
	"gorm.io/gorm"
)

// itemRecord is the persisted form of a cart line item. The position
// column preserves insertion order so a reload reconstructs the exact
// same cart.
type itemRecord struct {
	ProductID   int     `gorm:"primaryKey;column:product_id"`
	Position    int     `gorm:"not null;index"`
	Title       string  `gorm:"size:255;not null"`
	Price       float64 `gorm:"not null"`
	Image       string  `gorm:"size:500"`
	Category    string  `gorm:"size:100"`
	Description string  `gorm:"size:2000"`
	RatingRate  float64 `gorm:"column:rating_rate"`
	RatingCount int     `gorm:"column:rating_count"`
	Quantity    int     `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName returns the table name for itemRecord.
func (itemRecord) TableName() string {
	return "cart_items"
}

// Repository implements Storage on top of GORM + SQLite.
type Repository struct {
	db *gorm.DB
}

// Compile-time interface check.
var _ Storage = (*Repository)(nil)

// NewRepository creates a new cart repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the cart_items table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&itemRecord{}); err != nil {
		return fmt.Errorf("failed to migrate cart_items: %w", err)
	}
	return nil
}

// Save replaces the persisted cart with the given line items in a single
// transaction, keeping their order via the position column.
func (r *Repository) Save(ctx context.Context, items []domain.LineItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&itemRecord{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		records := make([]itemRecord, 0, len(items))
		for i, item := range items {
			records = append(records, itemRecord{
				ProductID:   item.ID,
				Position:    i,
				Title:       item.Title,
				Price:       item.Price,
				Image:       item.Image,
				Category:    item.Category,
				Description: item.Description,
				RatingRate:  item.Rating.Rate,
				RatingCount: item.Rating.Count,
				Quantity:    item.Quantity,
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Load retrieves the persisted line items ordered by position.
func (r *Repository) Load(ctx context.Context) ([]domain.LineItem, error) {
	var records []itemRecord
	if err := r.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.LineItem{
			Product: product.Product{
				ID:          rec.ProductID,
				Title:       rec.Title,
				Price:       rec.Price,
				Image:       rec.Image,
				Category:    rec.Category,
				Description: rec.Description,
				Rating: product.Rating{
					Rate:  rec.RatingRate,
					Count: rec.RatingCount,
				},
			},
			Quantity: rec.Quantity,
		})
	}
	return items, nil
}
