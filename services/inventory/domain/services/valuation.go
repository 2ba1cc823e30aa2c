// Package services holds the pure inventory rules: valuation and the
// dashboard summary.
package services

import (
	"github.com/shopspring/decimal"

	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	catalogsvcs "github.com/sevakart/marketplace/services/catalog/domain/services"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
)

// FallbackUnitPrice values items that have no catalog product of the same name.
var FallbackUnitPrice = decimal.NewFromInt(50)

// UnitPrice returns the catalog price of the first product named name, or
// FallbackUnitPrice.
func UnitPrice(products []*catalogmodels.Product, name string) decimal.Decimal {
	if p, ok := catalogsvcs.FindByName(products, name); ok {
		return p.Price
	}
	return FallbackUnitPrice
}

// TotalValue is Σ(currentStock × unit price) over items.
func TotalValue(items []*models.InventoryItem, products []*catalogmodels.Product) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(UnitPrice(products, it.Name).Mul(decimal.NewFromInt(int64(it.CurrentStock))))
	}
	return total
}

// Summary is the inventory dashboard.
type Summary struct {
	ItemCount     int
	LowCount      int
	CriticalCount int
	TotalValue    decimal.Decimal
}

// Summarize counts items by status and values the stock.
func Summarize(items []*models.InventoryItem, products []*catalogmodels.Product) Summary {
	s := Summary{ItemCount: len(items), TotalValue: TotalValue(items, products)}
	for _, it := range items {
		switch it.Status {
		case models.StatusLow:
			s.LowCount++
		case models.StatusCritical:
			s.CriticalCount++
		}
	}
	return s
}
