package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/logger"
	catalogsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	catalogmemory "github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/memory"
	appsvcs "github.com/sevakart/marketplace/services/inventory/application/services"
	"github.com/sevakart/marketplace/services/inventory/infrastructure/persistence/memory"
	ordersvcs "github.com/sevakart/marketplace/services/order/application/services"
	ordermemory "github.com/sevakart/marketplace/services/order/infrastructure/persistence/memory"
)

var vendor = auth.Identity{AccountID: uuid.New(), Role: auth.RoleVendor}

type env struct {
	router http.Handler
	orders *ordermemory.OrderRepository
}

func newEnv(t *testing.T) *env {
	t.Helper()
	n, _ := catalogmodels.NewProductName("Onion")
	onion, err := catalogmodels.NewProduct(uuid.New(), catalogmodels.ProductParams{
		Name:         n,
		Price:        decimal.NewFromInt(40),
		Unit:         catalogmodels.UnitKg,
		Category:     "Vegetables",
		SupplierName: "Fresh Farms",
		Stock:        50,
	})
	if err != nil {
		t.Fatal(err)
	}
	catalog := catalogsvcs.NewProductService(
		catalogmemory.NewProductRepository(onion),
		catalogmemory.NewCategoryRepository("Vegetables"),
		nil, logger.Nop(),
	)
	orderRepo := ordermemory.NewOrderRepository()
	orders := ordersvcs.NewOrderService(orderRepo, catalog, nil, logger.Nop())
	svcs := &appsvcs.Services{
		Inventory: appsvcs.NewInventoryService(memory.NewInventoryRepository(), catalog, orders, logger.Nop()),
	}
	r := chi.NewRouter()
	InventoryRoutes(r, svcs)
	return &env{router: r, orders: orderRepo}
}

func (e *env) do(t *testing.T, id *auth.Identity, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type itemBody struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Stock  int       `json:"current_stock"`
	Status string    `json:"status"`
}

func (e *env) add(t *testing.T, body string) itemBody {
	t.Helper()
	rec := e.do(t, &vendor, http.MethodPost, "/inventory", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var it itemBody
	if err := json.NewDecoder(rec.Body).Decode(&it); err != nil {
		t.Fatal(err)
	}
	return it
}

func TestInventoryRoutes_StockAndSummary(t *testing.T) {
	e := newEnv(t)

	onion := e.add(t, `{"name":"Onion","current_stock":2,"unit":"kg"}`)
	if onion.Status != "critical" {
		t.Errorf("onion status = %q, want critical", onion.Status)
	}
	garlic := e.add(t, `{"name":"Garlic","current_stock":10,"unit":"kg"}`)
	if garlic.Status != "good" {
		t.Errorf("garlic status = %q, want good", garlic.Status)
	}

	rec := e.do(t, &vendor, http.MethodGet, "/inventory/summary", "")
	var sum struct {
		ItemCount     int    `json:"item_count"`
		CriticalCount int    `json:"critical_count"`
		TotalValue    string `json:"total_value"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&sum)
	// 2 × 40 (catalog) + 10 × 50 (fallback)
	if sum.ItemCount != 2 || sum.CriticalCount != 1 || sum.TotalValue != "580" {
		t.Errorf("summary: %+v", sum)
	}

	rec = e.do(t, &vendor, http.MethodPut, "/inventory/"+garlic.ID.String(), `{"current_stock":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	var updated itemBody
	_ = json.NewDecoder(rec.Body).Decode(&updated)
	if updated.Status != "low" || updated.Stock != 4 {
		t.Errorf("updated: %+v", updated)
	}

	if rec := e.do(t, &vendor, http.MethodPut, "/inventory/"+garlic.ID.String(), `{"current_stock":-1}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("negative stock: expected 422, got %d", rec.Code)
	}

	other := auth.Identity{AccountID: uuid.New(), Role: auth.RoleVendor}
	if rec := e.do(t, &other, http.MethodDelete, "/inventory/"+garlic.ID.String(), ""); rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete: expected 404, got %d", rec.Code)
	}
	if rec := e.do(t, &vendor, http.MethodDelete, "/inventory/"+garlic.ID.String(), ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", rec.Code)
	}

	rec = e.do(t, &vendor, http.MethodGet, "/inventory", "")
	var list struct {
		Items []itemBody `json:"items"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&list)
	if len(list.Items) != 1 || list.Items[0].Name != "Onion" {
		t.Errorf("list: %+v", list.Items)
	}
}

func TestInventoryRoutes_Reorder(t *testing.T) {
	e := newEnv(t)
	onion := e.add(t, `{"name":"Onion","current_stock":1,"unit":"kg"}`)
	good := e.add(t, `{"name":"Onion Sets","current_stock":30,"unit":"pcs"}`)
	unknown := e.add(t, `{"name":"Saffron","current_stock":0,"unit":"g"}`)

	type reorderBody struct {
		OrderID uuid.UUID `json:"order_id"`
		Updated bool      `json:"updated"`
		Total   string    `json:"total"`
	}

	rec := e.do(t, &vendor, http.MethodPost, "/inventory/"+onion.ID.String()+"/reorder", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var first reorderBody
	_ = json.NewDecoder(rec.Body).Decode(&first)
	if first.Updated || first.Total != "200" {
		t.Errorf("first reorder: %+v", first)
	}

	rec = e.do(t, &vendor, http.MethodPost, "/inventory/"+onion.ID.String()+"/reorder", `{"quantity":8}`)
	var second reorderBody
	_ = json.NewDecoder(rec.Body).Decode(&second)
	if !second.Updated || second.OrderID != first.OrderID || second.Total != "320" {
		t.Errorf("second reorder: %+v", second)
	}
	if e.orders.Len() != 1 {
		t.Errorf("orders = %d, want 1", e.orders.Len())
	}

	tests := []struct {
		name string
		id   *auth.Identity
		path string
		want int
	}{
		{"good stock", &vendor, "/inventory/" + good.ID.String() + "/reorder", http.StatusConflict},
		{"no catalog product", &vendor, "/inventory/" + unknown.ID.String() + "/reorder", http.StatusNotFound},
		{"unknown item", &vendor, "/inventory/" + uuid.NewString() + "/reorder", http.StatusNotFound},
		{"bad id", &vendor, "/inventory/nope/reorder", http.StatusBadRequest},
		{"supplier", &auth.Identity{AccountID: uuid.New(), Role: auth.RoleSupplier}, "/inventory/" + onion.ID.String() + "/reorder", http.StatusForbidden},
		{"anonymous", nil, "/inventory/" + onion.ID.String() + "/reorder", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := e.do(t, tt.id, http.MethodPost, tt.path, ""); rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body)
			}
		})
	}
}
