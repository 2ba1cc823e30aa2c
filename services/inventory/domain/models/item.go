package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockStatus is the derived health of an item's stock level.
type StockStatus string

const (
	StatusGood     StockStatus = "good"
	StatusLow      StockStatus = "low"
	StatusCritical StockStatus = "critical"
)

// Stock thresholds, inclusive.
const (
	CriticalThreshold = 2
	LowThreshold      = 5
)

// Classify maps a stock level to its status: at most 2 is critical, 3 to 5
// is low, anything above is good.
func Classify(stock int) StockStatus {
	switch {
	case stock <= CriticalThreshold:
		return StatusCritical
	case stock <= LowThreshold:
		return StatusLow
	default:
		return StatusGood
	}
}

func (s StockStatus) String() string { return string(s) }

// NeedsReorder reports whether a reorder may be offered at this status.
func (s StockStatus) NeedsReorder() bool { return s != StatusGood }

// InventoryItem is a vendor's own stock record. Name links it to catalog
// products and order lines, compared without case.
type InventoryItem struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	Name         string
	CurrentStock int
	Unit         string
	Status       StockStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewInventoryItem validates the fields and builds an item with its status
// classified.
func NewInventoryItem(vendorID uuid.UUID, name string, stock int, unit string) (*InventoryItem, error) {
	if vendorID == uuid.Nil {
		return nil, errors.New("vendor_id must be set")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name must not be empty")
	}
	if err := validateStock(stock); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &InventoryItem{
		ID:           uuid.New(),
		VendorID:     vendorID,
		Name:         name,
		CurrentStock: stock,
		Unit:         strings.TrimSpace(unit),
		Status:       Classify(stock),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetStock records a new stock level and reclassifies the item.
func (i *InventoryItem) SetStock(stock int) error {
	if err := validateStock(stock); err != nil {
		return err
	}
	i.CurrentStock = stock
	i.Status = Classify(stock)
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}
