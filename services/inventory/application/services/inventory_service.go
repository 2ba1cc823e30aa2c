package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/logger"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
	"github.com/sevakart/marketplace/services/inventory/domain/repositories"
	domainsvcs "github.com/sevakart/marketplace/services/inventory/domain/services"
	ordermodels "github.com/sevakart/marketplace/services/order/domain/models"
)

// DefaultReorderQuantity is used when a reorder does not name a quantity.
const DefaultReorderQuantity = 5

// ProductLister prices inventory against the catalog.
type ProductLister interface {
	List(ctx context.Context) ([]*catalogmodels.Product, error)
}

// Reorderer places or updates the order that restocks an item.
// *order services.OrderService satisfies it.
type Reorderer interface {
	ReorderFromInventory(ctx context.Context, vendorID uuid.UUID, itemName string, qty int) (*ordermodels.Order, bool, error)
}

// ItemInput is a new inventory item as submitted by a vendor.
type ItemInput struct {
	Name  string
	Stock int
	Unit  string
}

// ReorderResult reports what a reorder did.
type ReorderResult struct {
	Order   *ordermodels.Order
	Updated bool // an open order was updated instead of creating one
}

// InventoryService manages a vendor's stock records and turns low stock
// into orders.
type InventoryService struct {
	repo    repositories.InventoryRepository
	catalog ProductLister
	orders  Reorderer
	log     logger.Logger
}

func NewInventoryService(repo repositories.InventoryRepository, catalog ProductLister, orders Reorderer, log logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, catalog: catalog, orders: orders, log: log}
}

// Add records a new item for vendorID.
func (s *InventoryService) Add(ctx context.Context, vendorID uuid.UUID, in ItemInput) (*models.InventoryItem, error) {
	item, err := models.NewInventoryItem(vendorID, in.Name, in.Stock, in.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidInventoryItem, err)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save inventory item: %w", err)
	}
	s.log.InfoContext(ctx, "inventory item added", "item_id", item.ID, "vendor_id", vendorID, "status", item.Status.String())
	return item, nil
}

// UpdateStock sets the current stock of one of the vendor's items.
func (s *InventoryService) UpdateStock(ctx context.Context, vendorID, id uuid.UUID, stock int) (*models.InventoryItem, error) {
	item, err := s.Get(ctx, vendorID, id)
	if err != nil {
		return nil, err
	}
	previous := item.Status
	if err := item.SetStock(stock); err != nil {
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidInventoryItem, err)
	}
	if err := s.repo.Update(ctx, item, previous); err != nil {
		return nil, err
	}
	if item.Status != previous {
		s.log.InfoContext(ctx, "inventory status changed",
			"item_id", id, "from", previous.String(), "to", item.Status.String(), "stock", stock)
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return s.repo.Delete(ctx, vendorID, id)
}

// Get returns one of the vendor's items. Items of other vendors are
// reported as not found.
func (s *InventoryService) Get(ctx context.Context, vendorID, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.VendorID != vendorID {
		return nil, inventorydomain.ErrInventoryItemNotFound
	}
	return item, nil
}

func (s *InventoryService) List(ctx context.Context, vendorID uuid.UUID) ([]*models.InventoryItem, error) {
	items, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

// Summary counts the vendor's items by status and values the stock at
// catalog prices.
func (s *InventoryService) Summary(ctx context.Context, vendorID uuid.UUID) (domainsvcs.Summary, error) {
	items, err := s.List(ctx, vendorID)
	if err != nil {
		return domainsvcs.Summary{}, err
	}
	products, err := s.catalog.List(ctx)
	if err != nil {
		return domainsvcs.Summary{}, fmt.Errorf("list products: %w", err)
	}
	return domainsvcs.Summarize(items, products), nil
}

// Reorder restocks a low or critical item with qty units, or
// DefaultReorderQuantity when qty is zero. Items with good stock yield
// ErrReorderNotNeeded.
func (s *InventoryService) Reorder(ctx context.Context, vendorID, itemID uuid.UUID, qty int) (ReorderResult, error) {
	if qty == 0 {
		qty = DefaultReorderQuantity
	}
	item, err := s.Get(ctx, vendorID, itemID)
	if err != nil {
		return ReorderResult{}, err
	}
	if !item.Status.NeedsReorder() {
		return ReorderResult{}, fmt.Errorf("%w: %s has %d in stock", inventorydomain.ErrReorderNotNeeded, item.Name, item.CurrentStock)
	}

	o, updated, err := s.orders.ReorderFromInventory(ctx, vendorID, item.Name, qty)
	if err != nil {
		return ReorderResult{}, err
	}
	s.log.InfoContext(ctx, "inventory reorder placed",
		"item_id", itemID, "order_id", o.ID, "updated", updated, "qty", qty)
	return ReorderResult{Order: o, Updated: updated}, nil
}
