package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	"github.com/sevakart/marketplace/services/order/domain/models"
)

var (
	vendor = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	supA   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	supB   = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func line(name string, qty int, price int64, supplier uuid.UUID) models.LineItem {
	return models.LineItem{Name: name, Qty: qty, Price: decimal.NewFromInt(price), SupplierID: supplier}
}

func order(t *testing.T, status models.Status, created time.Time, lines ...models.LineItem) *models.Order {
	t.Helper()
	o, err := models.NewOrder(vendor, lines, status)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	o.CreatedAt = created
	return o
}

func product(name string, price int64, supplier uuid.UUID) *catalogmodels.Product {
	n, _ := catalogmodels.NewProductName(name)
	return &catalogmodels.Product{
		ID:           uuid.New(),
		Name:         n,
		Price:        decimal.NewFromInt(price),
		Unit:         catalogmodels.UnitKg,
		Category:     "Vegetables",
		SupplierID:   supplier,
		SupplierName: "Fresh Farms",
		Stock:        40,
	}
}

func TestResolveReorderItems(t *testing.T) {
	onion := product("Onion", 45, supA)
	products := []*catalogmodels.Product{onion, product("Turmeric", 120, supA)}
	src := order(t, models.StatusDelivered, time.Now(),
		line("onion", 3, 40, supA),    // live product, price changed since
		line("Turmeric", 1, 100, supB), // same name but a different supplier
	)

	items := ResolveReorderItems(src, products)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	hit := items[0]
	if hit.ProductID != onion.ID {
		t.Errorf("hit ProductID = %s, want %s", hit.ProductID, onion.ID)
	}
	if !hit.Price.Equal(decimal.NewFromInt(40)) {
		t.Errorf("hit Price = %s, want historical 40", hit.Price)
	}
	if hit.Quantity != 3 || hit.Unit != "kg" || hit.Category != "Vegetables" || hit.Stock != 40 {
		t.Errorf("hit = %+v", hit)
	}

	miss := items[1]
	if miss.ProductID == uuid.Nil {
		t.Error("miss should get a generated id")
	}
	if miss.Unit != FallbackUnit || miss.Category != FallbackCategory ||
		miss.SupplierName != FallbackSupplierName || miss.Stock != FallbackStock {
		t.Errorf("miss = %+v, want fallbacks", miss)
	}
	if miss.SupplierID != supB || !miss.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("miss lost its historical supplier or price: %+v", miss)
	}

	lines := LinesFromCart(items)
	if len(lines) != 2 || lines[0].Name != "onion" || lines[0].Qty != 3 || lines[1].SupplierID != supB {
		t.Errorf("LinesFromCart() = %+v", lines)
	}
}

func TestFindOpenOrderWithItem(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := order(t, models.StatusOrdered, base, line("Onion", 1, 40, supA))
	newer := order(t, models.StatusOrdered, base.Add(time.Hour), line("Tomato", 1, 30, supA), line("onion", 2, 40, supA))
	shipped := order(t, models.StatusShipped, base.Add(2*time.Hour), line("Onion", 1, 40, supA))
	orders := []*models.Order{older, shipped, newer}

	if got := FindOpenOrderWithItem(orders, "ONION"); got != newer {
		t.Errorf("got %v, want the newest open order", got)
	}
	if got := FindOpenOrderWithItem(orders, "Garlic"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := FindOpenOrderWithItem([]*models.Order{shipped}, "Onion"); got != nil {
		t.Error("shipped orders must not be reused")
	}
}
