package product

import "testing"

func TestTopProducts(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := TopProducts([]Product{})
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d products", len(got))
		}
	})

	t.Run("nil input", func(t *testing.T) {
		got := TopProducts(nil)
		if got == nil {
			t.Fatal("expected non-nil empty slice")
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d products", len(got))
		}
	})

	t.Run("rating descending, price breaks ties", func(t *testing.T) {
		input := []Product{
			{ID: 1, Price: 20, Rating: Rating{Rate: 4.5}},
			{ID: 2, Price: 10, Rating: Rating{Rate: 4.5}},
			{ID: 3, Price: 50, Rating: Rating{Rate: 4.8}},
		}

		got := TopProducts(input)
		if len(got) != 3 {
			t.Fatalf("expected 3 products, got %d", len(got))
		}

		wantOrder := []int{3, 2, 1}
		for i, want := range wantOrder {
			if got[i].ID != want {
				t.Errorf("position %d: expected product %d, got %d", i, want, got[i].ID)
			}
		}
	})

	t.Run("caps at ten entries", func(t *testing.T) {
		input := make([]Product, 25)
		for i := range input {
			input[i] = Product{
				ID:     i + 1,
				Price:  float64(i),
				Rating: Rating{Rate: float64(i % 5)},
			}
		}

		got := TopProducts(input)
		if len(got) != TopCount {
			t.Errorf("expected %d products, got %d", TopCount, len(got))
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := []Product{
			{ID: 1, Price: 5, Rating: Rating{Rate: 1.0}},
			{ID: 2, Price: 5, Rating: Rating{Rate: 5.0}},
		}

		TopProducts(input)

		if input[0].ID != 1 || input[1].ID != 2 {
			t.Error("input slice was reordered")
		}
	})
}
