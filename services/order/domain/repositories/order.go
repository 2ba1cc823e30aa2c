package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// Every write publishes its order.* event in the same transaction.
//
// Conditional writes compare the stored status and version against the
// values carried by o. When no row matches they return ErrConcurrentUpdate
// and leave o untouched; on success o.Version is incremented.
type OrderRepository interface {
	// Save persists a new order with its lines and publishes order.placed.
	Save(ctx context.Context, o *models.Order) error

	// GetByID returns ErrOrderNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// ListByVendor returns the vendor's orders, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Order, error)

	// ListBySupplier returns orders with at least one line owned by
	// supplierID, newest first. Lines of other suppliers are included.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.Order, error)

	// UpdateItems rewrites the lines, total and attribution of an order that
	// is still ordered, and publishes order.updated.
	UpdateItems(ctx context.Context, o *models.Order) error

	// UpdateStatus moves o from o.Status to to and publishes
	// order.status_changed. On success o.Status is set to to.
	UpdateStatus(ctx context.Context, o *models.Order, to models.Status) error

	// Delete removes o and publishes order.rejected.
	Delete(ctx context.Context, o *models.Order) error
}
