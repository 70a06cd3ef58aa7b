package checkout

import "errors"

// Sentinel errors for checkout operations.
var (
	// ErrCheckoutInProgress is returned when a checkout is started while
	// another one is still running.
	ErrCheckoutInProgress = errors.New("checkout already in progress")

	// ErrEmptyCart is returned when checkout is started with no items in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
