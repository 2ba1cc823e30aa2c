package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

func validParams() models.ProductParams {
	return models.ProductParams{
		Name:     "Tomatoes",
		Price:    decimal.NewFromInt(40),
		Unit:     models.UnitKg,
		Category: "Vegetables",
		Stock:    100,
	}
}

func TestValidateProductParams(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ProductParams)
		wantErr bool
	}{
		{"valid", func(*models.ProductParams) {}, false},
		{"zero stock is allowed", func(p *models.ProductParams) { p.Stock = 0 }, false},
		{"zero price", func(p *models.ProductParams) { p.Price = decimal.Zero }, true},
		{"negative price", func(p *models.ProductParams) { p.Price = decimal.NewFromInt(-1) }, true},
		{"negative stock", func(p *models.ProductParams) { p.Stock = -1 }, true},
		{"unknown unit", func(p *models.ProductParams) { p.Unit = "dozen" }, true},
		{"control character in name", func(p *models.ProductParams) { p.Name = "Toma\x00toes" }, true},
		{"missing category", func(p *models.ProductParams) { p.Category = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			err := ValidateProductParams(p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateProductParams() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestNameTaken(t *testing.T) {
	existing := catalog()
	tomatoes := existing[0]

	if !NameTaken(existing, farmID, "TOMATOES", uuid.Nil) {
		t.Fatal("expected duplicate name for the same supplier")
	}
	if NameTaken(existing, spiceID, "Tomatoes", uuid.Nil) {
		t.Fatal("expected name to be free for another supplier")
	}
	if NameTaken(existing, farmID, "Tomatoes", tomatoes.ID) {
		t.Fatal("expected the product being updated to be ignored")
	}
}
