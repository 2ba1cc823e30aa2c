package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrInventoryItemNotFound indicates the item does not exist or belongs to another vendor.
	ErrInventoryItemNotFound = errors.New("inventory item not found")

	// ErrInvalidInventoryItem indicates the item violates domain constraints.
	ErrInvalidInventoryItem = errors.New("invalid inventory item")

	// ErrReorderNotNeeded indicates a reorder was requested for an item whose stock is good.
	ErrReorderNotNeeded = errors.New("reorder not needed")
)
