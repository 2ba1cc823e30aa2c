package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
)

func item(t *testing.T, name string, stock int) *models.InventoryItem {
	t.Helper()
	it, err := models.NewInventoryItem(uuid.New(), name, stock, "kg")
	if err != nil {
		t.Fatalf("NewInventoryItem: %v", err)
	}
	return it
}

func product(name string, price int64) *catalogmodels.Product {
	n, _ := catalogmodels.NewProductName(name)
	return &catalogmodels.Product{ID: uuid.New(), Name: n, Price: decimal.NewFromInt(price)}
}

func TestTotalValue(t *testing.T) {
	products := []*catalogmodels.Product{product("Onion", 40), product("Rice", 60)}
	items := []*models.InventoryItem{
		item(t, "onion", 10),  // 400
		item(t, "Rice", 2),    // 120
		item(t, "Saffron", 3), // fallback 3 × 50
	}
	if got := TotalValue(items, products); !got.Equal(decimal.NewFromInt(670)) {
		t.Errorf("TotalValue() = %s, want 670", got)
	}
	if got := TotalValue(nil, products); !got.IsZero() {
		t.Errorf("TotalValue(nil) = %s, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	items := []*models.InventoryItem{
		item(t, "Onion", 1),
		item(t, "Rice", 4),
		item(t, "Salt", 5),
		item(t, "Ghee", 20),
	}
	got := Summarize(items, nil)
	if got.ItemCount != 4 || got.CriticalCount != 1 || got.LowCount != 2 {
		t.Errorf("Summarize() = %+v", got)
	}
	if !got.TotalValue.Equal(decimal.NewFromInt(30 * 50)) {
		t.Errorf("TotalValue = %s, want 1500", got.TotalValue)
	}
}
