// Package services contains stateless domain services for the catalog bounded
// context: search and category filtering over a product list, name-based
// product resolution, and write-time validation.
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

// Search returns the products whose name, category or supplier label contains
// query as a case-insensitive substring. A blank query returns all products.
func Search(products []*models.Product, query string) []*models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name.String()), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.SupplierName), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory returns the products whose category equals category.
// "all" or an empty category returns all products.
func FilterByCategory(products []*models.Product, category string) []*models.Product {
	if category == "" || category == models.CategoryAll {
		return products
	}
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// View is the catalog as a client currently sees it: the full product list
// and the result of the most recent search or category filter. Searches and
// filters do not compose; each derives a new View from the full list.
type View struct {
	all    []*models.Product
	active []*models.Product
}

// NewView returns a View showing every product.
func NewView(products []*models.Product) View {
	return View{all: products, active: products}
}

// Search returns a View showing Search(all, query).
func (v View) Search(query string) View {
	return View{all: v.all, active: Search(v.all, query)}
}

// FilterByCategory returns a View showing FilterByCategory(all, category).
func (v View) FilterByCategory(category string) View {
	return View{all: v.all, active: FilterByCategory(v.all, category)}
}

// Products returns the active result.
func (v View) Products() []*models.Product { return v.active }

// All returns the unfiltered list.
func (v View) All() []*models.Product { return v.all }

// FindByName returns the first product whose name matches name ignoring case.
func FindByName(products []*models.Product, name string) (*models.Product, bool) {
	for _, p := range products {
		if p.Name.Matches(name) {
			return p, true
		}
	}
	return nil, false
}

// FindByNameAndSupplier is FindByName restricted to supplierID. A nil
// supplierID only matches products without an owner, which never exist, so
// callers fall back to their defaults.
func FindByNameAndSupplier(products []*models.Product, name string, supplierID uuid.UUID) (*models.Product, bool) {
	for _, p := range products {
		if p.SupplierID == supplierID && p.Name.Matches(name) {
			return p, true
		}
	}
	return nil, false
}
