package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates the supplier already lists a product with the same name.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidCategory indicates a malformed category choice.
	ErrInvalidCategory = errors.New("invalid category")
)
