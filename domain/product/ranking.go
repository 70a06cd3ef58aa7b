package product

import "sort"

// TopCount is the maximum number of products returned by TopProducts.
const TopCount = 10

// TopProducts returns the top products for featured display: sorted by
// rating descending, ties broken by price ascending (cheaper wins), capped
// at TopCount entries. The input slice is never mutated; a nil or empty
// input yields an empty slice.
func TopProducts(products []Product) []Product {
	if len(products) == 0 {
		return []Product{}
	}

	ranked := make([]Product, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating.Rate != ranked[j].Rating.Rate {
			return ranked[i].Rating.Rate > ranked[j].Rating.Rate
		}
		return ranked[i].Price < ranked[j].Price
	})

	if len(ranked) > TopCount {
		ranked = ranked[:TopCount]
	}
	return ranked
}
