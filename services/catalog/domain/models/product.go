package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry owned by one supplier.
type Product struct {
	ID           uuid.UUID
	Name         ProductName
	Price        decimal.Decimal
	Unit         Unit
	Category     string
	SupplierID   uuid.UUID
	SupplierName string // display label, searched alongside name and category
	Stock        int
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductParams carries the writable fields of a Product.
type ProductParams struct {
	Name         ProductName
	Price        decimal.Decimal
	Unit         Unit
	Category     string
	SupplierName string
	Stock        int
	Image        *string
}

// NewProduct constructs a Product aggregate for supplierID with a generated ID
// and current timestamps.
func NewProduct(supplierID uuid.UUID, p ProductParams) (*Product, error) {
	if supplierID == uuid.Nil {
		return nil, errors.New("supplier_id must be set")
	}
	now := time.Now().UTC()
	return &Product{
		ID:           uuid.New(),
		Name:         p.Name,
		Price:        p.Price,
		Unit:         p.Unit,
		Category:     p.Category,
		SupplierID:   supplierID,
		SupplierName: p.SupplierName,
		Stock:        p.Stock,
		Image:        p.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Apply overwrites the writable fields with p and bumps UpdatedAt.
func (pr *Product) Apply(p ProductParams) {
	pr.Name = p.Name
	pr.Price = p.Price
	pr.Unit = p.Unit
	pr.Category = p.Category
	pr.SupplierName = p.SupplierName
	pr.Stock = p.Stock
	pr.Image = p.Image
	pr.UpdatedAt = time.Now().UTC()
}

// InStock reports whether the product can still be added to a cart.
func (pr *Product) InStock() bool {
	return pr.Stock > 0
}
