package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/postgres/db"
)

func TestRowToProduct(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	row := db.CatalogProduct{
		ID:           uuid.New(),
		SupplierID:   uuid.New(),
		Name:         "Basmati Rice",
		Price:        decimal.RequireFromString("95.00"),
		Unit:         "kg",
		Category:     "Flour & Rice",
		SupplierName: "Annapurna Traders",
		Stock:        40,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	p := rowToProduct(row)
	if p.Name.String() != "Basmati Rice" || p.Stock != 40 || p.Unit.String() != "kg" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if !p.Price.Equal(decimal.NewFromInt(95)) {
		t.Errorf("price: got %s", p.Price)
	}
	if p.Image != nil {
		t.Errorf("expected nil image for NULL column, got %q", *p.Image)
	}

	row.Image.String, row.Image.Valid = "https://cdn.example/rice.png", true
	if p := rowToProduct(row); p.Image == nil || *p.Image != row.Image.String {
		t.Errorf("expected image to be mapped, got %v", p.Image)
	}
}

func TestNullString(t *testing.T) {
	if ns := nullString(nil); ns.Valid {
		t.Error("expected invalid NullString for nil")
	}
	s := "x"
	if ns := nullString(&s); !ns.Valid || ns.String != "x" {
		t.Errorf("unexpected NullString: %+v", ns)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !isUniqueViolation(wrapped) {
		t.Error("expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation must not be treated as unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("plain error must not be treated as unique violation")
	}
}
