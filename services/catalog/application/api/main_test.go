package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/logger"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/memory"
)

func newRouter(id *auth.Identity) http.Handler {
	svcs := &appsvcs.Services{
		Product: appsvcs.NewProductService(
			memory.NewProductRepository(),
			memory.NewCategoryRepository("Vegetables", "Dairy"),
			nil,
			logger.Nop(),
		),
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if id != nil {
				req = req.WithContext(auth.WithIdentity(req.Context(), *id))
			}
			next.ServeHTTP(w, req)
		})
	})
	CatalogRoutes(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const tomatoesBody = `{"name":"Tomatoes","price":"40.00","unit":"kg","category":{"existing":"Vegetables"},"supplier_name":"Fresh Farms","stock":50}`

func TestCatalogRoutes_SupplierLifecycle(t *testing.T) {
	supplier := auth.Identity{AccountID: uuid.New(), Role: auth.RoleSupplier}
	h := newRouter(&supplier)

	rec := do(t, h, http.MethodPost, "/products", tomatoesBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var created struct {
		ID         uuid.UUID `json:"id"`
		SupplierID uuid.UUID `json:"supplier_id"`
		Price      string    `json:"price"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.SupplierID != supplier.AccountID || created.Price != "40" {
		t.Errorf("unexpected product: %+v", created)
	}

	if rec := do(t, h, http.MethodPost, "/products", strings.Replace(tomatoesBody, "Tomatoes", "tomatoes", 1)); rec.Code != http.StatusConflict {
		t.Errorf("duplicate: expected 409, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/products?q=fresh", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Tomatoes") {
		t.Errorf("search: got %d %s", rec.Code, rec.Body)
	}

	path := "/products/" + created.ID.String()
	if rec := do(t, h, http.MethodPut, path, strings.Replace(tomatoesBody, `"stock":50`, `"stock":2`, 1)); rec.Code != http.StatusOK {
		t.Errorf("update: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if rec := do(t, h, http.MethodDelete, path, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestCatalogRoutes_Validation(t *testing.T) {
	supplier := auth.Identity{AccountID: uuid.New(), Role: auth.RoleSupplier}
	h := newRouter(&supplier)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"bad unit", strings.Replace(tomatoesBody, `"kg"`, `"crate"`, 1), http.StatusUnprocessableEntity},
		{"both category forms", strings.Replace(tomatoesBody, `{"existing":"Vegetables"}`, `{"existing":"Vegetables","new":"Veg"}`, 1), http.StatusUnprocessableEntity},
		{"non-positive price", strings.Replace(tomatoesBody, `"40.00"`, `"0"`, 1), http.StatusUnprocessableEntity},
		{"unknown category", strings.Replace(tomatoesBody, "Vegetables", "Toys", 1), http.StatusUnprocessableEntity},
		{"negative stock", strings.Replace(tomatoesBody, `"stock":50`, `"stock":-1`, 1), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, h, http.MethodPost, "/products", tt.body); rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body)
			}
		})
	}
}

func TestCatalogRoutes_RoleChecks(t *testing.T) {
	vendor := auth.Identity{AccountID: uuid.New(), Role: auth.RoleVendor}

	if rec := do(t, newRouter(&vendor), http.MethodPost, "/products", tomatoesBody); rec.Code != http.StatusForbidden {
		t.Errorf("vendor create: expected 403, got %d", rec.Code)
	}
	if rec := do(t, newRouter(nil), http.MethodPost, "/categories", `{"name":"Pickles"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous add category: expected 401, got %d", rec.Code)
	}

	rec := do(t, newRouter(&vendor), http.MethodGet, "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("categories: expected 200, got %d", rec.Code)
	}
	var body struct {
		Categories []string `json:"categories"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if len(body.Categories) != 3 || body.Categories[0] != "all" {
		t.Errorf("unexpected categories: %v", body.Categories)
	}
}
