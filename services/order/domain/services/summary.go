package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/order/domain/models"
)

// SupplierOrderView is an order as one supplier sees it: only that
// supplier's lines and their subtotal. Status is still the shared order status.
type SupplierOrderView struct {
	Order    *models.Order
	Items    []models.LineItem
	Subtotal decimal.Decimal
}

// ViewFor builds the SupplierOrderView of o for supplierID.
func ViewFor(o *models.Order, supplierID uuid.UUID) SupplierOrderView {
	lines := o.LinesFor(supplierID)
	return SupplierOrderView{Order: o, Items: lines, Subtotal: sum(lines)}
}

// VendorSummary is the vendor dashboard.
type VendorSummary struct {
	TodayOrders    int
	DeliveredToday int
	PendingToday   int
	SpentToday     decimal.Decimal
	CurrentOrders  int // not yet delivered
	HistoryOrders  int // delivered
}

// SummarizeVendor aggregates orders placed by one vendor. "Today" is the
// calendar day of now in now's location.
func SummarizeVendor(orders []*models.Order, now time.Time) VendorSummary {
	s := VendorSummary{SpentToday: decimal.Zero}
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			s.HistoryOrders++
		} else {
			s.CurrentOrders++
		}
		if !sameDay(o.CreatedAt, now) {
			continue
		}
		s.TodayOrders++
		s.SpentToday = s.SpentToday.Add(o.Total)
		if o.Status == models.StatusDelivered {
			s.DeliveredToday++
		} else {
			s.PendingToday++
		}
	}
	return s
}

// SupplierSummary is the supplier dashboard.
type SupplierSummary struct {
	TodayOrders  int
	NewOrders    int // status ordered
	WeeklySales  decimal.Decimal
	ProductCount int
}

// SummarizeSupplier aggregates the supplier's share of orders. Sales count
// only the supplier's own lines over the seven days ending now.
func SummarizeSupplier(orders []*models.Order, supplierID uuid.UUID, productCount int, now time.Time) SupplierSummary {
	s := SupplierSummary{WeeklySales: decimal.Zero, ProductCount: productCount}
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, o := range orders {
		if !o.VisibleTo(supplierID) {
			continue
		}
		if sameDay(o.CreatedAt, now) {
			s.TodayOrders++
		}
		if o.Status == models.StatusOrdered {
			s.NewOrders++
		}
		if !o.CreatedAt.Before(weekAgo) && !o.CreatedAt.After(now) {
			s.WeeklySales = s.WeeklySales.Add(sum(o.LinesFor(supplierID)))
		}
	}
	return s
}

// Customer is one vendor's business with a supplier.
type Customer struct {
	VendorID      uuid.UUID
	OrderCount    int
	TotalBusiness decimal.Decimal
	LastOrderAt   time.Time
}

// Customers groups the supplier's visible orders by vendor, sorted by total
// business descending and then by vendor id for a stable order.
func Customers(orders []*models.Order, supplierID uuid.UUID) []Customer {
	byVendor := map[uuid.UUID]*Customer{}
	for _, o := range orders {
		if !o.VisibleTo(supplierID) {
			continue
		}
		c, ok := byVendor[o.VendorID]
		if !ok {
			c = &Customer{VendorID: o.VendorID, TotalBusiness: decimal.Zero}
			byVendor[o.VendorID] = c
		}
		c.OrderCount++
		c.TotalBusiness = c.TotalBusiness.Add(sum(o.LinesFor(supplierID)))
		if o.CreatedAt.After(c.LastOrderAt) {
			c.LastOrderAt = o.CreatedAt
		}
	}

	out := make([]Customer, 0, len(byVendor))
	for _, c := range byVendor {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].TotalBusiness.Cmp(out[j].TotalBusiness); cmp != 0 {
			return cmp > 0
		}
		return out[i].VendorID.String() < out[j].VendorID.String()
	})
	return out
}

func sum(lines []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
