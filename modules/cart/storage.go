package cart

import (
	"context"

	domain "github.com/example/storefront/domain/cart"
)

// Storage persists cart line items across sessions. Save replaces the
// whole snapshot; Load returns the items in the order they were saved.
// Implementations report failures through the error return — the store
// treats them as soft failures and keeps operating in memory.
type Storage interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}
