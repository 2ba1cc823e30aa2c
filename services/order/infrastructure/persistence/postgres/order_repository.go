package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/events"
	orderdomain "github.com/sevakart/marketplace/services/order/domain"
	domainevents "github.com/sevakart/marketplace/services/order/domain/events"
	"github.com/sevakart/marketplace/services/order/domain/models"
	"github.com/sevakart/marketplace/services/order/infrastructure/persistence/postgres/db"
)

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository. A nil bus disables event
// publishing.
func NewOrderRepository(database *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: database, bus: bus}
}

func (r *OrderRepository) Save(ctx context.Context, o *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:        o.ID,
			VendorID:  o.VendorID,
			Total:     o.Total,
			Status:    o.Status.String(),
			Supplier:  o.Supplier,
			Version:   int32(o.Version),
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if err := insertItems(ctx, q, o); err != nil {
			return err
		}
		return r.publish(ctx, tx, domainevents.TopicOrderPlaced, o, "")
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	q := db.New(r.db.DB())
	row, err := q.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	items, err := q.ListOrderItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	return rowToOrder(row, items), nil
}

func (r *OrderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Order, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListOrdersByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query vendor orders: %w", err)
	}
	items, err := q.ListOrderItemsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query vendor order items: %w", err)
	}
	return assemble(rows, items), nil
}

func (r *OrderRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.Order, error) {
	q := db.New(r.db.DB())
	sid := uuid.NullUUID{UUID: supplierID, Valid: true}
	rows, err := q.ListOrdersBySupplier(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("query supplier orders: %w", err)
	}
	items, err := q.ListOrderItemsBySupplier(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("query supplier order items: %w", err)
	}
	return assemble(rows, items), nil
}

func (r *OrderRepository) UpdateItems(ctx context.Context, o *models.Order) error {
	now := time.Now().UTC()
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		n, err := q.UpdateOrderTotals(ctx, db.UpdateOrderTotalsParams{
			ID:        o.ID,
			Version:   int32(o.Version),
			Total:     o.Total,
			Supplier:  o.Supplier,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrConcurrentUpdate
		}
		if err := q.DeleteOrderItems(ctx, o.ID); err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}
		if err := insertItems(ctx, q, o); err != nil {
			return err
		}
		next := o.Clone()
		next.Version++
		next.UpdatedAt = now
		return r.publish(ctx, tx, domainevents.TopicOrderUpdated, next, "")
	})
	if err != nil {
		return err
	}
	o.Version++
	o.UpdatedAt = now
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *models.Order, to models.Status) error {
	now := time.Now().UTC()
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			ID:        o.ID,
			Version:   int32(o.Version),
			Status:    o.Status.String(),
			Status_2:  to.String(),
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrConcurrentUpdate
		}
		next := o.Clone()
		next.Status = to
		next.Version++
		next.UpdatedAt = now
		return r.publish(ctx, tx, domainevents.TopicOrderStatusChanged, next, o.Status)
	})
	if err != nil {
		return err
	}
	o.Status = to
	o.Version++
	o.UpdatedAt = now
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, o *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteOrder(ctx, db.DeleteOrderParams{
			ID:      o.ID,
			Version: int32(o.Version),
			Status:  o.Status.String(),
		})
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrConcurrentUpdate
		}
		return r.publish(ctx, tx, domainevents.TopicOrderRejected, o, o.Status)
	})
}

func (r *OrderRepository) publish(ctx context.Context, tx *sql.Tx, topic string, o *models.Order, previous models.Status) error {
	if r.bus == nil {
		return nil
	}
	event := NewOrderEvent(topic, o, previous)
	if err := r.bus.PublishTx(ctx, tx, topic, event.EventID.String(), event.Version, event); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// NewOrderEvent builds the payload published on topic for o.
func NewOrderEvent(topic string, o *models.Order, previous models.Status) domainevents.OrderEvent {
	e := domainevents.OrderEvent{
		EventID:     uuid.New(),
		Version:     1,
		Type:        topic,
		OrderID:     o.ID,
		VendorID:    o.VendorID,
		SupplierIDs: o.SupplierIDs(),
		Status:      o.Status.String(),
		Total:       o.Total,
		OccurredAt:  o.UpdatedAt,
	}
	if previous != "" && previous != o.Status {
		e.PreviousStatus = previous.String()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	return e
}

func insertItems(ctx context.Context, q *db.Queries, o *models.Order) error {
	for i, it := range o.Items {
		err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
			OrderID:    o.ID,
			Position:   int32(i),
			Name:       it.Name,
			Qty:        int32(it.Qty),
			Price:      it.Price,
			SupplierID: nullUUID(it.SupplierID),
		})
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", i, err)
		}
	}
	return nil
}

// assemble groups item rows under their orders, keeping the order of rows.
func assemble(rows []db.OrdersOrder, items []db.OrdersOrderItem) []*models.Order {
	byOrder := make(map[uuid.UUID][]db.OrdersOrderItem, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	out := make([]*models.Order, len(rows))
	for i, row := range rows {
		out[i] = rowToOrder(row, byOrder[row.ID])
	}
	return out
}

func rowToOrder(row db.OrdersOrder, items []db.OrdersOrderItem) *models.Order {
	o := &models.Order{
		ID:        row.ID,
		VendorID:  row.VendorID,
		Total:     row.Total,
		Status:    models.Status(row.Status),
		Supplier:  row.Supplier,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Version:   int(row.Version),
		Items:     make([]models.LineItem, len(items)),
	}
	for i, it := range items {
		o.Items[i] = models.LineItem{
			Name:  it.Name,
			Qty:   int(it.Qty),
			Price: it.Price,
		}
		if it.SupplierID.Valid {
			o.Items[i].SupplierID = it.SupplierID.UUID
		}
	}
	return o
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
