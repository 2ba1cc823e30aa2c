package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func sampleParams() ProductParams {
	return ProductParams{
		Name:         "Tomatoes",
		Price:        decimal.NewFromInt(40),
		Unit:         UnitKg,
		Category:     "Vegetables",
		SupplierName: "Fresh Farms",
		Stock:        100,
	}
}

func TestNewProduct(t *testing.T) {
	supplierID := uuid.New()

	t.Run("sets fields and identity", func(t *testing.T) {
		p, err := NewProduct(supplierID, sampleParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == uuid.Nil {
			t.Fatal("expected non-zero ID")
		}
		if p.SupplierID != supplierID {
			t.Fatalf("expected supplier %v, got %v", supplierID, p.SupplierID)
		}
		if !p.Price.Equal(decimal.NewFromInt(40)) || p.Unit != UnitKg || p.Stock != 100 {
			t.Fatalf("unexpected product: %+v", p)
		}
		if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
			t.Fatalf("expected equal non-zero timestamps, got %v / %v", p.CreatedAt, p.UpdatedAt)
		}
	})

	t.Run("nil supplier is rejected", func(t *testing.T) {
		if _, err := NewProduct(uuid.Nil, sampleParams()); err == nil {
			t.Fatal("expected error for nil supplier")
		}
	})
}

func TestProduct_Apply(t *testing.T) {
	p, _ := NewProduct(uuid.New(), sampleParams())
	created := p.CreatedAt

	params := sampleParams()
	params.Price = decimal.NewFromInt(45)
	params.Stock = 0
	p.Apply(params)

	if !p.Price.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected updated price, got %s", p.Price)
	}
	if p.InStock() {
		t.Fatal("expected product with zero stock to be out of stock")
	}
	if !p.CreatedAt.Equal(created) {
		t.Fatal("Apply must not change CreatedAt")
	}
	if p.UpdatedAt.Before(created) {
		t.Fatal("expected UpdatedAt to move forward")
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range []string{"kg", "L", "piece", "packet"} {
		if _, err := ParseUnit(u); err != nil {
			t.Errorf("ParseUnit(%q): unexpected error %v", u, err)
		}
	}
	for _, u := range []string{"", "l", "unit", "KG"} {
		if _, err := ParseUnit(u); err == nil {
			t.Errorf("ParseUnit(%q): expected error", u)
		}
	}
}
