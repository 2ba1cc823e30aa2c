// Package memory provides an in-process OrderRepository with the same
// conditional-write semantics as the Postgres one. It records the topics it
// would have published so callers can assert on them.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	orderdomain "github.com/sevakart/marketplace/services/order/domain"
	domainevents "github.com/sevakart/marketplace/services/order/domain/events"
	"github.com/sevakart/marketplace/services/order/domain/models"
)

// OrderRepository keeps orders in a map keyed by id.
type OrderRepository struct {
	mu        sync.Mutex
	orders    map[uuid.UUID]*models.Order
	published []string
}

// NewOrderRepository returns a repository seeded with orders.
func NewOrderRepository(orders ...*models.Order) *OrderRepository {
	r := &OrderRepository{orders: map[uuid.UUID]*models.Order{}}
	for _, o := range orders {
		r.orders[o.ID] = o.Clone()
	}
	return r
}

// Published returns the topics written so far, in order.
func (r *OrderRepository) Published() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.published...)
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *OrderRepository) Save(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o.Clone()
	r.published = append(r.published, domainevents.TopicOrderPlaced)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *OrderRepository) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*models.Order, error) {
	return r.list(func(o *models.Order) bool { return o.VendorID == vendorID }), nil
}

func (r *OrderRepository) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]*models.Order, error) {
	return r.list(func(o *models.Order) bool { return o.VisibleTo(supplierID) }), nil
}

func (r *OrderRepository) UpdateItems(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID]
	if !ok || stored.Version != o.Version || stored.Status != models.StatusOrdered {
		return orderdomain.ErrConcurrentUpdate
	}
	o.Version++
	o.UpdatedAt = time.Now().UTC()
	next := o.Clone()
	next.Status = stored.Status
	next.CreatedAt = stored.CreatedAt
	r.orders[o.ID] = next
	r.published = append(r.published, domainevents.TopicOrderUpdated)
	return nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, o *models.Order, to models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID]
	if !ok || stored.Version != o.Version || stored.Status != o.Status {
		return orderdomain.ErrConcurrentUpdate
	}
	stored.Status = to
	stored.Version++
	stored.UpdatedAt = time.Now().UTC()
	o.Status, o.Version, o.UpdatedAt = stored.Status, stored.Version, stored.UpdatedAt
	r.published = append(r.published, domainevents.TopicOrderStatusChanged)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID]
	if !ok || stored.Version != o.Version || stored.Status != o.Status {
		return orderdomain.ErrConcurrentUpdate
	}
	delete(r.orders, o.ID)
	r.published = append(r.published, domainevents.TopicOrderRejected)
	return nil
}

func (r *OrderRepository) list(keep func(*models.Order) bool) []*models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Order
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
