package models

import (
	"fmt"
	"strings"
)

// ProductName is a value object representing a valid product name.
// Encapsulates validation rules: 1 <= len(trimmed name) <= 255.
type ProductName string

const (
	minProductNameLength = 1
	maxProductNameLength = 255
)

// NewProductName trims s and returns a ProductName or an error if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	s = strings.TrimSpace(s)
	if len(s) < minProductNameLength {
		return "", fmt.Errorf("product name must be at least %d character", minProductNameLength)
	}
	if len(s) > maxProductNameLength {
		return "", fmt.Errorf("product name must not exceed %d characters", maxProductNameLength)
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}

// Matches reports whether n equals other ignoring case. Names are the join key
// between catalog products, order line items and inventory items.
func (n ProductName) Matches(other string) bool {
	return strings.EqualFold(string(n), strings.TrimSpace(other))
}
