package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/example/storefront/domain/product"
)

// mockSource implements ProductSource for testing.
type mockSource struct {
	products   []product.Product
	fetchAllN  int
	fetchByIDN int
	err        error
}

func (m *mockSource) FetchAll(_ context.Context) ([]product.Product, error) {
	m.fetchAllN++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockSource) FetchByID(_ context.Context, id int) (*product.Product, error) {
	m.fetchByIDN++
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func catalogFixture() []product.Product {
	return []product.Product{
		{ID: 1, Title: "Backpack", Price: 20, Rating: product.Rating{Rate: 4.5, Count: 10}},
		{ID: 2, Title: "T-Shirt", Price: 10, Rating: product.Rating{Rate: 4.5, Count: 20}},
		{ID: 3, Title: "Monitor", Price: 50, Rating: product.Rating{Rate: 4.8, Count: 5}},
	}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns upstream products", func(t *testing.T) {
		source := &mockSource{products: catalogFixture()}
		svc := NewService(source, nil)

		products, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 3 {
			t.Errorf("expected 3 products, got %d", len(products))
		}
	})

	t.Run("propagates upstream failure", func(t *testing.T) {
		source := &mockSource{err: errors.New("connection refused")}
		svc := NewService(source, nil)

		if _, err := svc.List(ctx); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	source := &mockSource{products: catalogFixture()}
	svc := NewService(source, nil)

	t.Run("existing product", func(t *testing.T) {
		p, err := svc.GetByID(ctx, 2)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if p.Title != "T-Shirt" {
			t.Errorf("expected title %q, got %q", "T-Shirt", p.Title)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 42)
		if !errors.Is(err, ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestService_Top(t *testing.T) {
	ctx := context.Background()
	source := &mockSource{products: catalogFixture()}
	svc := NewService(source, nil)

	top, err := svc.Top(ctx)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}

	// Rating descending, price ascending on ties.
	wantOrder := []int{3, 2, 1}
	if len(top) != len(wantOrder) {
		t.Fatalf("expected %d products, got %d", len(wantOrder), len(top))
	}
	for i, want := range wantOrder {
		if top[i].ID != want {
			t.Errorf("position %d: expected product %d, got %d", i, want, top[i].ID)
		}
	}
}
