package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/inventory/domain/models"
)

// InventoryRepository is the persistence interface for inventory items.
// Save and Update publish inventory.stock_changed in the same transaction.
type InventoryRepository interface {
	Save(ctx context.Context, item *models.InventoryItem) error

	// Update persists a stock change of an item owned by item.VendorID.
	// previous is the status before the change and is carried on the event.
	Update(ctx context.Context, item *models.InventoryItem, previous models.StockStatus) error

	Delete(ctx context.Context, vendorID, id uuid.UUID) error

	// GetByID returns ErrInventoryItemNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)

	// ListByVendor returns the vendor's items ordered by name.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.InventoryItem, error)
}
