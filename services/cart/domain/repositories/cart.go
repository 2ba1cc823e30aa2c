package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/services/cart/domain/models"
)

// CartStore persists whole-cart snapshots. Each Save replaces the previous
// snapshot for the vendor; Load returns items in cart order.
type CartStore interface {
	Load(ctx context.Context, vendorID uuid.UUID) ([]models.CartItem, error)
	Save(ctx context.Context, vendorID uuid.UUID, items []models.CartItem) error
}
