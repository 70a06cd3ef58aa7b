// Package product defines the catalog product entity shared across modules.
package product

// Rating holds the aggregate customer rating for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog product record. The core never mutates products;
// they are read-only input from the catalog collaborator. JSON field names
// match the upstream catalog payload.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      Rating  `json:"rating"`
}
