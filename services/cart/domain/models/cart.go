package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
)

// Snapshot freezes the product attributes shown in the cart at the time the
// product was added. Later catalog edits do not change it.
type Snapshot struct {
	Name         string
	Price        decimal.Decimal
	Unit         string
	Category     string
	SupplierID   uuid.UUID
	SupplierName string
	Stock        int
	Image        *string
}

// SnapshotOf captures the cart-relevant attributes of p.
func SnapshotOf(p *catalogmodels.Product) Snapshot {
	return Snapshot{
		Name:         p.Name.String(),
		Price:        p.Price,
		Unit:         p.Unit.String(),
		Category:     p.Category,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Stock:        p.Stock,
		Image:        p.Image,
	}
}

// CartItem is one product line of a cart.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
	Snapshot
}

// Subtotal is Price × Quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a vendor's ordered collection of items keyed by product id.
type Cart struct {
	VendorID uuid.UUID
	Items    []CartItem
}

// Add merges qty into an existing line for productID or appends a new line
// with snap. Stock is not checked.
func (c *Cart) Add(productID uuid.UUID, snap Snapshot, qty int) {
	if i := c.index(productID); i >= 0 {
		c.Items[i].Quantity += qty
		return
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty, Snapshot: snap})
}

// Remove drops the line for productID. Absent ids are ignored.
func (c *Cart) Remove(productID uuid.UUID) {
	if i := c.index(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// SetQuantity sets the quantity of productID exactly; qty <= 0 removes it.
// It reports whether the cart changed.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		c.Remove(productID)
		return true
	}
	c.Items[i].Quantity = qty
	return true
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is Σ(price × quantity) over the current lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Count is the number of lines.
func (c Cart) Count() int { return len(c.Items) }

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Clone returns a deep enough copy for handing to another goroutine.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{VendorID: c.VendorID, Items: items}
}

func (c Cart) index(productID uuid.UUID) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
