package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/pkg/logger"
	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
	"github.com/sevakart/marketplace/services/inventory/infrastructure/persistence/memory"
	ordermodels "github.com/sevakart/marketplace/services/order/domain/models"
)

var vendorID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

type staticCatalog []*catalogmodels.Product

func (c staticCatalog) List(context.Context) ([]*catalogmodels.Product, error) { return c, nil }

type reorderCall struct {
	vendor uuid.UUID
	name   string
	qty    int
}

// fakeReorderer records calls and answers with a one-line order.
type fakeReorderer struct {
	calls   []reorderCall
	updated bool
	err     error
}

func (f *fakeReorderer) ReorderFromInventory(_ context.Context, vendor uuid.UUID, name string, qty int) (*ordermodels.Order, bool, error) {
	f.calls = append(f.calls, reorderCall{vendor, name, qty})
	if f.err != nil {
		return nil, false, f.err
	}
	o, err := ordermodels.NewOrder(vendor, []ordermodels.LineItem{{Name: name, Qty: qty, Price: decimal.NewFromInt(40)}}, "")
	return o, f.updated, err
}

func newService(t *testing.T, items ...*models.InventoryItem) (*InventoryService, *memory.InventoryRepository, *fakeReorderer) {
	t.Helper()
	n, _ := catalogmodels.NewProductName("Onion")
	catalog := staticCatalog{{ID: uuid.New(), Name: n, Price: decimal.NewFromInt(40)}}
	repo := memory.NewInventoryRepository(items...)
	orders := &fakeReorderer{}
	return NewInventoryService(repo, catalog, orders, logger.Nop()), repo, orders
}

func seedItem(t *testing.T, name string, stock int) *models.InventoryItem {
	t.Helper()
	it, err := models.NewInventoryItem(vendorID, name, stock, "kg")
	if err != nil {
		t.Fatalf("NewInventoryItem: %v", err)
	}
	return it
}

func TestAdd(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, vendorID, ItemInput{Name: "Onion", Stock: 2, Unit: "kg"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.Status != models.StatusCritical {
		t.Errorf("Status = %q, want critical", item.Status)
	}
	if evs := repo.Events(); len(evs) != 1 || evs[0].Status != "critical" {
		t.Errorf("events = %+v", evs)
	}

	for _, in := range []ItemInput{{Name: "", Stock: 1}, {Name: "Rice", Stock: -1}} {
		if _, err := svc.Add(ctx, vendorID, in); !errors.Is(err, inventorydomain.ErrInvalidInventoryItem) {
			t.Errorf("Add(%+v): err = %v, want ErrInvalidInventoryItem", in, err)
		}
	}
}

func TestUpdateStock(t *testing.T) {
	item := seedItem(t, "Onion", 10)
	svc, repo, _ := newService(t, item)
	ctx := context.Background()

	got, err := svc.UpdateStock(ctx, vendorID, item.ID, 4)
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}
	if got.Status != models.StatusLow {
		t.Errorf("Status = %q, want low", got.Status)
	}
	evs := repo.Events()
	if len(evs) != 1 || evs[0].PreviousStatus != "good" || evs[0].Status != "low" {
		t.Errorf("events = %+v", evs)
	}

	if _, err := svc.UpdateStock(ctx, vendorID, item.ID, -2); !errors.Is(err, inventorydomain.ErrInvalidInventoryItem) {
		t.Errorf("negative: err = %v, want ErrInvalidInventoryItem", err)
	}
	if _, err := svc.UpdateStock(ctx, uuid.New(), item.ID, 1); !errors.Is(err, inventorydomain.ErrInventoryItemNotFound) {
		t.Errorf("other vendor: err = %v, want ErrInventoryItemNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	item := seedItem(t, "Onion", 10)
	svc, _, _ := newService(t, item)
	ctx := context.Background()

	if err := svc.Delete(ctx, uuid.New(), item.ID); !errors.Is(err, inventorydomain.ErrInventoryItemNotFound) {
		t.Errorf("other vendor: err = %v", err)
	}
	if err := svc.Delete(ctx, vendorID, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if items, _ := svc.List(ctx, vendorID); len(items) != 0 {
		t.Errorf("items = %+v, want none", items)
	}
}

func TestSummary(t *testing.T) {
	svc, _, _ := newService(t,
		seedItem(t, "Onion", 2), // critical, 2 × 40
		seedItem(t, "Salt", 4),  // low, 4 × 50
		seedItem(t, "Rice", 10), // good, 10 × 50
	)
	s, err := svc.Summary(context.Background(), vendorID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.ItemCount != 3 || s.CriticalCount != 1 || s.LowCount != 1 {
		t.Errorf("summary = %+v", s)
	}
	if !s.TotalValue.Equal(decimal.NewFromInt(780)) {
		t.Errorf("TotalValue = %s, want 780", s.TotalValue)
	}
}

func TestReorder(t *testing.T) {
	low := seedItem(t, "Onion", 3)
	good := seedItem(t, "Rice", 30)
	svc, _, orders := newService(t, low, good)
	ctx := context.Background()

	res, err := svc.Reorder(ctx, vendorID, low.ID, 0)
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if res.Order == nil || len(orders.calls) != 1 {
		t.Fatalf("result = %+v, calls = %+v", res, orders.calls)
	}
	if c := orders.calls[0]; c.vendor != vendorID || c.name != "Onion" || c.qty != DefaultReorderQuantity {
		t.Errorf("call = %+v", c)
	}

	if _, err := svc.Reorder(ctx, vendorID, good.ID, 5); !errors.Is(err, inventorydomain.ErrReorderNotNeeded) {
		t.Errorf("good item: err = %v, want ErrReorderNotNeeded", err)
	}
	if len(orders.calls) != 1 {
		t.Error("good items must not reach the order service")
	}

	orders.err = catalogdomain.ErrProductNotFound
	if _, err := svc.Reorder(ctx, vendorID, low.ID, 2); !errors.Is(err, catalogdomain.ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound passed through", err)
	}
}
