package services

import (
	"fmt"
	"unicode"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

// ValidateProductParams enforces the write rules shared by create and update:
// a printable name, a positive price, a non-negative stock and a known unit.
func ValidateProductParams(p models.ProductParams) error {
	for _, r := range p.Name.String() {
		if unicode.IsControl(r) {
			return fmt.Errorf("product name must not contain control characters")
		}
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("price must be greater than zero")
	}
	if p.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if _, err := models.ParseUnit(p.Unit.String()); err != nil {
		return err
	}
	if p.Category == "" {
		return fmt.Errorf("category must be set")
	}
	return nil
}

// NameTaken reports whether supplierID already lists a product called name,
// ignoring the product excludeID (the one being updated).
func NameTaken(existing []*models.Product, supplierID uuid.UUID, name models.ProductName, excludeID uuid.UUID) bool {
	for _, p := range existing {
		if p.ID == excludeID || p.SupplierID != supplierID {
			continue
		}
		if p.Name.Matches(name.String()) {
			return true
		}
	}
	return false
}
