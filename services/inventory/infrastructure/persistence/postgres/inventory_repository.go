package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/events"
	inventorydomain "github.com/sevakart/marketplace/services/inventory/domain"
	domainevents "github.com/sevakart/marketplace/services/inventory/domain/events"
	"github.com/sevakart/marketplace/services/inventory/domain/models"
	"github.com/sevakart/marketplace/services/inventory/infrastructure/persistence/postgres/db"
)

// InventoryRepository implements repositories.InventoryRepository against PostgreSQL.
type InventoryRepository struct {
	db  *database.Database
	bus *events.EventBus
}

func NewInventoryRepository(database *database.Database, bus *events.EventBus) *InventoryRepository {
	return &InventoryRepository{db: database, bus: bus}
}

func (r *InventoryRepository) Save(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			ID:           item.ID,
			VendorID:     item.VendorID,
			Name:         item.Name,
			CurrentStock: int32(item.CurrentStock),
			Unit:         item.Unit,
			Status:       item.Status.String(),
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert inventory item: %w", err)
		}
		return r.publish(ctx, tx, item, "")
	})
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem, previous models.StockStatus) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItemStock(ctx, db.UpdateItemStockParams{
			ID:           item.ID,
			VendorID:     item.VendorID,
			CurrentStock: int32(item.CurrentStock),
			Status:       item.Status.String(),
			UpdatedAt:    item.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("update inventory item: %w", err)
		}
		if n == 0 {
			return inventorydomain.ErrInventoryItemNotFound
		}
		return r.publish(ctx, tx, item, previous)
	})
}

func (r *InventoryRepository) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteItem(ctx, db.DeleteItemParams{ID: id, VendorID: vendorID})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if n == 0 {
		return inventorydomain.ErrInventoryItemNotFound
	}
	return nil
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventorydomain.ErrInventoryItemNotFound
		}
		return nil, fmt.Errorf("query inventory item: %w", err)
	}
	return rowToItem(row), nil
}

func (r *InventoryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.InventoryItem, error) {
	rows, err := db.New(r.db.DB()).ListItemsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query inventory items: %w", err)
	}
	out := make([]*models.InventoryItem, len(rows))
	for i, row := range rows {
		out[i] = rowToItem(row)
	}
	return out, nil
}

func (r *InventoryRepository) publish(ctx context.Context, tx *sql.Tx, item *models.InventoryItem, previous models.StockStatus) error {
	if r.bus == nil {
		return nil
	}
	event := NewStockChangedEvent(item, previous)
	if err := r.bus.PublishTx(ctx, tx, domainevents.TopicStockChanged, event.EventID.String(), event.Version, event); err != nil {
		return fmt.Errorf("publish %s: %w", domainevents.TopicStockChanged, err)
	}
	return nil
}

// NewStockChangedEvent builds the inventory.stock_changed payload for item.
func NewStockChangedEvent(item *models.InventoryItem, previous models.StockStatus) domainevents.StockChangedEvent {
	return domainevents.StockChangedEvent{
		EventID:        uuid.New(),
		Version:        1,
		ItemID:         item.ID,
		VendorID:       item.VendorID,
		Name:           item.Name,
		Stock:          item.CurrentStock,
		Status:         item.Status.String(),
		PreviousStatus: previous.String(),
		OccurredAt:     item.UpdatedAt,
	}
}

func rowToItem(row db.InventoryItem) *models.InventoryItem {
	return &models.InventoryItem{
		ID:           row.ID,
		VendorID:     row.VendorID,
		Name:         row.Name,
		CurrentStock: int(row.CurrentStock),
		Unit:         row.Unit,
		Status:       models.StockStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
