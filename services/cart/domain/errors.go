package domain

import "errors"

// Sentinel errors for the cart domain. Use errors.Is() to check these.
var (
	// ErrInvalidQuantity indicates an add with a quantity below one.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrEmptyCart indicates a checkout of a cart without items.
	ErrEmptyCart = errors.New("cart is empty")
)
