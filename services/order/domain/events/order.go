package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Topics published by the order repository.
const (
	TopicOrderPlaced        = "order.placed"
	TopicOrderUpdated       = "order.updated"
	TopicOrderStatusChanged = "order.status_changed"
	TopicOrderRejected      = "order.rejected"
)

// Topics lists every order topic, in the order the worker subscribes to them.
var Topics = []string{TopicOrderPlaced, TopicOrderUpdated, TopicOrderStatusChanged, TopicOrderRejected}

// OrderEvent is the payload of every order.* topic. It carries enough for
// the realtime feed to notify the vendor and every supplier involved.
type OrderEvent struct {
	EventID        uuid.UUID       `json:"event_id"`
	Version        int             `json:"version"`
	Type           string          `json:"type"`
	OrderID        uuid.UUID       `json:"order_id"`
	VendorID       uuid.UUID       `json:"vendor_id"`
	SupplierIDs    []uuid.UUID     `json:"supplier_ids"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// Recipients returns the accounts that should see the event: the vendor
// followed by each supplier.
func (e OrderEvent) Recipients() []uuid.UUID {
	out := make([]uuid.UUID, 0, 1+len(e.SupplierIDs))
	out = append(out, e.VendorID)
	for _, id := range e.SupplierIDs {
		if id != e.VendorID {
			out = append(out, id)
		}
	}
	return out
}
