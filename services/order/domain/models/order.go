package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributionMultiple is the Supplier value of an order whose lines do not
// share exactly one supplier.
const AttributionMultiple = "multiple"

// LineItem is a settlement record frozen at commit time. It refers to the
// product by name only; later catalog edits never reach it.
type LineItem struct {
	Name       string
	Qty        int
	Price      decimal.Decimal
	SupplierID uuid.UUID // uuid.Nil when the origin supplier is unknown
}

// Subtotal is Qty × Price.
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Validate checks a single line.
func (l LineItem) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("line item name must not be empty")
	}
	if l.Qty < 1 {
		return fmt.Errorf("line item %q: quantity must be at least 1", l.Name)
	}
	if l.Price.IsNegative() {
		return fmt.Errorf("line item %q: price must not be negative", l.Name)
	}
	return nil
}

// Order is the unit of commerce between one vendor and one or more suppliers.
type Order struct {
	ID        uuid.UUID
	VendorID  uuid.UUID
	Items     []LineItem
	Total     decimal.Decimal
	Status    Status
	Supplier  string // attribution: a supplier id or AttributionMultiple
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// NewOrder validates items and builds an order with derived total and
// attribution. An empty status defaults to StatusOrdered.
func NewOrder(vendorID uuid.UUID, items []LineItem, status Status) (*Order, error) {
	if vendorID == uuid.Nil {
		return nil, errors.New("vendor_id must be set")
	}
	if len(items) == 0 {
		return nil, errors.New("order must contain at least one line item")
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
	}
	if status == "" {
		status = StatusOrdered
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Items:     append([]LineItem(nil), items...),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	o.Recalculate()
	return o, nil
}

// Recalculate derives Total and Supplier from Items.
func (o *Order) Recalculate() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	o.Total = total
	o.Supplier = Attribute(o.Items)
}

// Attribute returns the single distinct non-nil supplier id of items, or
// AttributionMultiple when there are zero or several.
func Attribute(items []LineItem) string {
	var only uuid.UUID
	for _, it := range items {
		if it.SupplierID == uuid.Nil {
			continue
		}
		if only == uuid.Nil {
			only = it.SupplierID
			continue
		}
		if it.SupplierID != only {
			return AttributionMultiple
		}
	}
	if only == uuid.Nil {
		return AttributionMultiple
	}
	return only.String()
}

// SupplierIDs returns the distinct non-nil supplier ids in line order.
func (o *Order) SupplierIDs() []uuid.UUID {
	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, it := range o.Items {
		if it.SupplierID == uuid.Nil || seen[it.SupplierID] {
			continue
		}
		seen[it.SupplierID] = true
		ids = append(ids, it.SupplierID)
	}
	return ids
}

// VisibleTo reports whether at least one line belongs to supplierID.
func (o *Order) VisibleTo(supplierID uuid.UUID) bool {
	if supplierID == uuid.Nil {
		return false
	}
	for _, it := range o.Items {
		if it.SupplierID == supplierID {
			return true
		}
	}
	return false
}

// LinesFor returns the lines belonging to supplierID.
func (o *Order) LinesFor(supplierID uuid.UUID) []LineItem {
	var out []LineItem
	for _, it := range o.Items {
		if it.SupplierID == supplierID {
			out = append(out, it)
		}
	}
	return out
}

// HasItemNamed reports whether a line matches name ignoring case.
func (o *Order) HasItemNamed(name string) bool {
	for _, it := range o.Items {
		if sameName(it.Name, name) {
			return true
		}
	}
	return false
}

// SetQuantityByName sets qty on every line whose name matches and returns the
// number of lines changed. Total and attribution are recomputed.
func (o *Order) SetQuantityByName(name string, qty int) int {
	n := 0
	for i := range o.Items {
		if sameName(o.Items[i].Name, name) {
			o.Items[i].Qty = qty
			n++
		}
	}
	if n > 0 {
		o.Recalculate()
	}
	return n
}

// Clone returns a copy whose Items can be modified independently.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = append([]LineItem(nil), o.Items...)
	return &cp
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
