// Package memory provides in-process implementations of the catalog
// repositories. They back tests across bounded contexts and local tooling
// that runs without Postgres.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

// ProductRepository is a mutex-guarded slice of products in insertion order.
type ProductRepository struct {
	mu       sync.Mutex
	products []*models.Product
}

// NewProductRepository returns a repository seeded with products.
func NewProductRepository(products ...*models.Product) *ProductRepository {
	r := &ProductRepository{}
	for _, p := range products {
		cp := *p
		r.products = append(r.products, &cp)
	}
	return r
}

func (r *ProductRepository) Save(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.SupplierID == p.SupplierID && existing.Name.Matches(p.Name.String()) {
			return catalogdomain.ErrProductAlreadyExists
		}
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == p.ID && existing.SupplierID == p.SupplierID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return catalogdomain.ErrProductNotFound
}

func (r *ProductRepository) Delete(_ context.Context, supplierID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id && existing.SupplierID == supplierID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return catalogdomain.ErrProductNotFound
}

func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, catalogdomain.ErrProductNotFound
}

func (r *ProductRepository) List(_ context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Product, len(r.products))
	for i, p := range r.products {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *ProductRepository) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Product
	for _, p := range r.products {
		if p.SupplierID == supplierID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CategoryRepository keeps the vocabulary in insertion order.
type CategoryRepository struct {
	mu    sync.Mutex
	names []string
}

func NewCategoryRepository(names ...string) *CategoryRepository {
	return &CategoryRepository{names: append([]string(nil), names...)}
}

func (r *CategoryRepository) List(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...), nil
}

func (r *CategoryRepository) Add(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.names {
		if n == name {
			return nil
		}
	}
	r.names = append(r.names, name)
	return nil
}
