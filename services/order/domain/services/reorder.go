package services

import (
	"github.com/google/uuid"

	cartmodels "github.com/sevakart/marketplace/services/cart/domain/models"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	catalogsvcs "github.com/sevakart/marketplace/services/catalog/domain/services"
	"github.com/sevakart/marketplace/services/order/domain/models"
)

// Defaults for reordered lines whose product is no longer in the catalog.
const (
	FallbackUnit         = "unit"
	FallbackCategory     = "Reordered"
	FallbackSupplierName = "Previous Supplier"
	FallbackStock        = 100
)

// ResolveReorderItems rebuilds cart lines from a past order. Each line is
// matched against products by (name, supplier). A hit takes the live product
// id, unit, category, stock, image and supplier label; a miss gets the
// fallback defaults and a fresh id. The historical price and quantity are
// always kept.
func ResolveReorderItems(source *models.Order, products []*catalogmodels.Product) []cartmodels.CartItem {
	items := make([]cartmodels.CartItem, len(source.Items))
	for i, line := range source.Items {
		item := cartmodels.CartItem{
			Quantity: line.Qty,
			Snapshot: cartmodels.Snapshot{
				Name:       line.Name,
				Price:      line.Price,
				SupplierID: line.SupplierID,
			},
		}
		if p, ok := catalogsvcs.FindByNameAndSupplier(products, line.Name, line.SupplierID); ok {
			item.ProductID = p.ID
			item.Unit = p.Unit.String()
			item.Category = p.Category
			item.SupplierName = p.SupplierName
			item.Stock = p.Stock
			item.Image = p.Image
		} else {
			item.ProductID = uuid.New()
			item.Unit = FallbackUnit
			item.Category = FallbackCategory
			item.SupplierName = FallbackSupplierName
			item.Stock = FallbackStock
		}
		items[i] = item
	}
	return items
}

// LinesFromCart converts cart items into order lines.
func LinesFromCart(items []cartmodels.CartItem) []models.LineItem {
	lines := make([]models.LineItem, len(items))
	for i, it := range items {
		lines[i] = models.LineItem{
			Name:       it.Name,
			Qty:        it.Quantity,
			Price:      it.Price,
			SupplierID: it.SupplierID,
		}
	}
	return lines
}

// FindOpenOrderWithItem returns the most recently created order in status
// ordered that has a line named name, or nil.
func FindOpenOrderWithItem(orders []*models.Order, name string) *models.Order {
	var found *models.Order
	for _, o := range orders {
		if o.Status != models.StatusOrdered || !o.HasItemNamed(name) {
			continue
		}
		if found == nil || o.CreatedAt.After(found.CreatedAt) {
			found = o
		}
	}
	return found
}
