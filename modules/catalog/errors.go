package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrProductNotFound is returned when the requested product does not
	// exist in the upstream catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstreamUnavailable is returned when the upstream catalog cannot
	// be reached or answers with a server error.
	ErrUpstreamUnavailable = errors.New("catalog upstream unavailable")
)
