// Package memory provides an in-process InventoryRepository that records
// the stock events it would have published.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
	domainevents "github.com/sevakart/marketplace/services/inventory/domain/events"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
)

// InventoryRepository keeps items in a map keyed by id.
type InventoryRepository struct {
	mu     sync.Mutex
	items  map[uuid.UUID]*models.InventoryItem
	events []domainevents.StockChangedEvent
}

func NewInventoryRepository(items ...*models.InventoryItem) *InventoryRepository {
	r := &InventoryRepository{items: map[uuid.UUID]*models.InventoryItem{}}
	for _, it := range items {
		cp := *it
		r.items[it.ID] = &cp
	}
	return r
}

// Events returns the stock events recorded so far.
func (r *InventoryRepository) Events() []domainevents.StockChangedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domainevents.StockChangedEvent(nil), r.events...)
}

func (r *InventoryRepository) Save(_ context.Context, item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	r.record(item, "")
	return nil
}

func (r *InventoryRepository) Update(_ context.Context, item *models.InventoryItem, previous models.StockStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok || stored.VendorID != item.VendorID {
		return inventorydomain.ErrInventoryItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	r.record(item, previous)
	return nil
}

func (r *InventoryRepository) Delete(_ context.Context, vendorID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok || stored.VendorID != vendorID {
		return inventorydomain.ErrInventoryItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InventoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[id]
	if !ok {
		return nil, inventorydomain.ErrInventoryItemNotFound
	}
	cp := *stored
	return &cp, nil
}

func (r *InventoryRepository) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.InventoryItem
	for _, it := range r.items {
		if it.VendorID == vendorID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *InventoryRepository) record(item *models.InventoryItem, previous models.StockStatus) {
	r.events = append(r.events, domainevents.StockChangedEvent{
		ItemID:         item.ID,
		VendorID:       item.VendorID,
		Name:           item.Name,
		Stock:          item.CurrentStock,
		Status:         item.Status.String(),
		PreviousStatus: previous.String(),
		OccurredAt:     item.UpdatedAt,
	})
}
