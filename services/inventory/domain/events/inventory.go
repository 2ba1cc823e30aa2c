package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicStockChanged is published whenever an item is added or its stock changes.
const TopicStockChanged = "inventory.stock_changed"

// StockChangedEvent is the payload of inventory.stock_changed.
type StockChangedEvent struct {
	EventID        uuid.UUID `json:"event_id"`
	Version        int       `json:"version"`
	ItemID         uuid.UUID `json:"item_id"`
	VendorID       uuid.UUID `json:"vendor_id"`
	Name           string    `json:"name"`
	Stock          int       `json:"stock"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// BecameCritical reports whether the change moved the item into critical
// stock. Repeated updates while already critical do not count.
func (e StockChangedEvent) BecameCritical() bool {
	return e.Status == "critical" && e.PreviousStatus != "critical"
}
