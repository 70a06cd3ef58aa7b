package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const productListJSON = `[
	{"id":1,"title":"Backpack","price":109.95,"image":"https://example.com/1.png","category":"men's clothing","description":"Fits laptops up to 15 inches","rating":{"rate":3.9,"count":120}},
	{"id":2,"title":"T-Shirt","price":22.3,"image":"https://example.com/2.png","category":"men's clothing","description":"Slim fit","rating":{"rate":4.1,"count":259}}
]`

func TestClient_FetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productListJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	products, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Title != "Backpack" {
		t.Errorf("expected title %q, got %q", "Backpack", products[0].Title)
	}
	if products[1].Rating.Rate != 4.1 {
		t.Errorf("expected rating 4.1, got %v", products[1].Rating.Rate)
	}
}

func TestClient_FetchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/1":
			w.Write([]byte(`{"id":1,"title":"Backpack","price":109.95,"rating":{"rate":3.9,"count":120}}`))
		case "/products/404":
			w.WriteHeader(http.StatusNotFound)
		case "/products/999":
			// Upstream quirk: unknown id with empty body and 200 status.
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("existing product", func(t *testing.T) {
		p, err := client.FetchByID(ctx, 1)
		if err != nil {
			t.Fatalf("FetchByID() error = %v", err)
		}
		if p.ID != 1 || p.Price != 109.95 {
			t.Errorf("unexpected product: %+v", p)
		}
	})

	t.Run("404 maps to ErrProductNotFound", func(t *testing.T) {
		_, err := client.FetchByID(ctx, 404)
		if !errors.Is(err, ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("empty body maps to ErrProductNotFound", func(t *testing.T) {
		_, err := client.FetchByID(ctx, 999)
		if !errors.Is(err, ErrProductNotFound) {
			t.Errorf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("server error maps to ErrUpstreamUnavailable", func(t *testing.T) {
		_, err := client.FetchByID(ctx, 7)
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}
