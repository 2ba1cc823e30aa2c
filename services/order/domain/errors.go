package domain

import "errors"

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the order does not exist or is not visible to the caller.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrder indicates malformed line items (no lines, qty < 1, negative price, blank name).
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInvalidTransition indicates a lifecycle action from the wrong status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrentUpdate indicates the order changed between read and write.
	ErrConcurrentUpdate = errors.New("order was modified concurrently")
)
