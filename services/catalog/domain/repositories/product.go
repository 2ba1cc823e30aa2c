package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/catalog/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// Save persists a new Product and publishes product.created.
	// Returns ErrProductAlreadyExists when the supplier already lists the name.
	Save(ctx context.Context, p *models.Product) error

	// Update persists changes to a Product owned by p.SupplierID.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes a product owned by supplierID. Historical order line
	// items are stored by value and are not affected.
	Delete(ctx context.Context, supplierID, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// List returns every product in creation order.
	List(ctx context.Context) ([]*models.Product, error)

	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.Product, error)
}

// CategoryRepository stores the append-only category vocabulary.
type CategoryRepository interface {
	// List returns stored category names in insertion order, without "all".
	List(ctx context.Context) ([]string, error)

	// Add appends name. Adding an existing name is a no-op.
	Add(ctx context.Context, name string) error
}
