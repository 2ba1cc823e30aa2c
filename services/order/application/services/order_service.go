package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/logger"
	cartdomain "github.com/sevakart/marketplace/services/cart/domain"
	cartmodels "github.com/sevakart/marketplace/services/cart/domain/models"
	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
	orderdomain "github.com/sevakart/marketplace/services/order/domain"
	"github.com/sevakart/marketplace/services/order/domain/models"
	"github.com/sevakart/marketplace/services/order/domain/repositories"
	domainsvcs "github.com/sevakart/marketplace/services/order/domain/services"
)

// Origins recorded on orders_placed_total.
const (
	originDirect    = "direct"
	originCheckout  = "checkout"
	originReorder   = "reorder"
	originInventory = "inventory"
)

// ProductCatalog is the read side of the catalog used for reorder resolution.
// *catalog services.ProductService satisfies it.
type ProductCatalog interface {
	List(ctx context.Context) ([]*catalogmodels.Product, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*catalogmodels.Product, error)
	FindByName(ctx context.Context, name string) (*catalogmodels.Product, bool, error)
}

// Cart is the vendor cart as seen by checkout and reorder.
// *cart services.CartService satisfies it.
type Cart interface {
	Get(ctx context.Context, vendorID uuid.UUID) cartmodels.Cart
	Replace(ctx context.Context, vendorID uuid.UUID, items []cartmodels.CartItem) cartmodels.Cart
	Clear(ctx context.Context, vendorID uuid.UUID) error
}

// OrderService commits orders and drives their lifecycle. Every write is
// awaited; events are published by the repository in the same transaction.
type OrderService struct {
	repo    repositories.OrderRepository
	catalog ProductCatalog
	cart    Cart
	log     logger.Logger
	metrics *orderMetrics
	now     func() time.Time
}

func NewOrderService(repo repositories.OrderRepository, catalog ProductCatalog, cart Cart, log logger.Logger) *OrderService {
	return &OrderService{
		repo:    repo,
		catalog: catalog,
		cart:    cart,
		log:     log,
		metrics: newOrderMetrics(),
		now:     time.Now,
	}
}

// PlaceOrder validates lines and commits a new order for vendorID. An empty
// status means ordered.
func (s *OrderService) PlaceOrder(ctx context.Context, vendorID uuid.UUID, lines []models.LineItem, status models.Status) (*models.Order, error) {
	return s.place(ctx, vendorID, lines, status, originDirect)
}

// Checkout commits the vendor's cart and clears it. The cart is left intact
// when the commit fails; a failure to clear after a commit is only logged.
func (s *OrderService) Checkout(ctx context.Context, vendorID uuid.UUID) (*models.Order, error) {
	c := s.cart.Get(ctx, vendorID)
	if c.IsEmpty() {
		return nil, cartdomain.ErrEmptyCart
	}

	o, err := s.place(ctx, vendorID, domainsvcs.LinesFromCart(c.Items), models.StatusOrdered, originCheckout)
	if err != nil {
		return nil, err
	}
	if err := s.cart.Clear(ctx, vendorID); err != nil {
		s.log.ErrorContext(ctx, "failed to clear cart after checkout", "vendor_id", vendorID, "order_id", o.ID, "error", err)
	}
	return o, nil
}

// Reorder copies a past order. Each line is resolved against the live
// catalog, the vendor's cart is replaced by the resolved items and a new
// order is committed at the historical prices.
//
// callerID may be uuid.Nil, in which case the source order's vendor is used.
// A known caller that does not own the source order gets ErrOrderNotFound.
func (s *OrderService) Reorder(ctx context.Context, callerID, sourceID uuid.UUID) (*models.Order, error) {
	src, err := s.repo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	vendorID := src.VendorID
	if callerID != uuid.Nil {
		if callerID != src.VendorID {
			return nil, orderdomain.ErrOrderNotFound
		}
		vendorID = callerID
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	items := domainsvcs.ResolveReorderItems(src, products)
	s.cart.Replace(ctx, vendorID, items)

	o, err := s.place(ctx, vendorID, domainsvcs.LinesFromCart(items), models.StatusOrdered, originReorder)
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "order reordered", "order_id", o.ID, "source_order_id", src.ID)
	return o, nil
}

// ReorderFromInventory restocks itemName for vendorID. When the vendor has
// an open (ordered) order containing the item, that order's matching lines
// are set to qty and updated in place; updated is true. Otherwise a
// single-line order is created from the catalog product of that name.
// Neither path available yields ErrProductNotFound and nothing is written.
func (s *OrderService) ReorderFromInventory(ctx context.Context, vendorID uuid.UUID, itemName string, qty int) (o *models.Order, updated bool, err error) {
	if qty < 1 {
		return nil, false, fmt.Errorf("%w: quantity must be at least 1", orderdomain.ErrInvalidOrder)
	}

	orders, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, false, fmt.Errorf("list vendor orders: %w", err)
	}
	if open := domainsvcs.FindOpenOrderWithItem(orders, itemName); open != nil {
		open.SetQuantityByName(itemName, qty)
		if err := s.repo.UpdateItems(ctx, open); err != nil {
			return nil, false, err
		}
		s.log.InfoContext(ctx, "open order updated from inventory", "order_id", open.ID, "item", itemName, "qty", qty)
		return open, true, nil
	}

	p, ok, err := s.catalog.FindByName(ctx, itemName)
	if err != nil {
		return nil, false, fmt.Errorf("find product: %w", err)
	}
	if !ok {
		return nil, false, fmt.Errorf("%w: no catalog product named %q", catalogdomain.ErrProductNotFound, itemName)
	}
	line := models.LineItem{Name: p.Name.String(), Qty: qty, Price: p.Price, SupplierID: p.SupplierID}
	o, err = s.place(ctx, vendorID, []models.LineItem{line}, models.StatusOrdered, originInventory)
	if err != nil {
		return nil, false, err
	}
	return o, false, nil
}

// Accept moves an ordered order to shipped.
func (s *OrderService) Accept(ctx context.Context, supplierID, orderID uuid.UUID) (*models.Order, error) {
	return s.transition(ctx, supplierID, orderID, domainsvcs.ActionAccept)
}

// MarkDelivered moves a shipped order to delivered.
func (s *OrderService) MarkDelivered(ctx context.Context, supplierID, orderID uuid.UUID) (*models.Order, error) {
	return s.transition(ctx, supplierID, orderID, domainsvcs.ActionDeliver)
}

// Reject deletes an order that is still ordered.
func (s *OrderService) Reject(ctx context.Context, supplierID, orderID uuid.UUID) error {
	_, err := s.transition(ctx, supplierID, orderID, domainsvcs.ActionReject)
	return err
}

// GetForVendor returns an order placed by vendorID.
func (s *OrderService) GetForVendor(ctx context.Context, vendorID, orderID uuid.UUID) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.VendorID != vendorID {
		return nil, orderdomain.ErrOrderNotFound
	}
	return o, nil
}

// GetForSupplier returns the supplier's view of an order it has lines in.
func (s *OrderService) GetForSupplier(ctx context.Context, supplierID, orderID uuid.UUID) (domainsvcs.SupplierOrderView, error) {
	o, err := s.supplierOrder(ctx, supplierID, orderID)
	if err != nil {
		return domainsvcs.SupplierOrderView{}, err
	}
	return domainsvcs.ViewFor(o, supplierID), nil
}

// ListForVendor returns the vendor's orders, newest first.
func (s *OrderService) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Order, error) {
	orders, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list vendor orders: %w", err)
	}
	return orders, nil
}

// ListForSupplier returns the supplier's view of every order it has lines in.
func (s *OrderService) ListForSupplier(ctx context.Context, supplierID uuid.UUID) ([]domainsvcs.SupplierOrderView, error) {
	orders, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	views := make([]domainsvcs.SupplierOrderView, len(orders))
	for i, o := range orders {
		views[i] = domainsvcs.ViewFor(o, supplierID)
	}
	return views, nil
}

func (s *OrderService) VendorSummary(ctx context.Context, vendorID uuid.UUID) (domainsvcs.VendorSummary, error) {
	orders, err := s.ListForVendor(ctx, vendorID)
	if err != nil {
		return domainsvcs.VendorSummary{}, err
	}
	return domainsvcs.SummarizeVendor(orders, s.now()), nil
}

func (s *OrderService) SupplierSummary(ctx context.Context, supplierID uuid.UUID) (domainsvcs.SupplierSummary, error) {
	orders, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return domainsvcs.SupplierSummary{}, fmt.Errorf("list supplier orders: %w", err)
	}
	products, err := s.catalog.ListBySupplier(ctx, supplierID)
	if err != nil {
		return domainsvcs.SupplierSummary{}, fmt.Errorf("list supplier products: %w", err)
	}
	return domainsvcs.SummarizeSupplier(orders, supplierID, len(products), s.now()), nil
}

func (s *OrderService) Customers(ctx context.Context, supplierID uuid.UUID) ([]domainsvcs.Customer, error) {
	orders, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier orders: %w", err)
	}
	return domainsvcs.Customers(orders, supplierID), nil
}

func (s *OrderService) place(ctx context.Context, vendorID uuid.UUID, lines []models.LineItem, status models.Status, origin string) (*models.Order, error) {
	o, err := models.NewOrder(vendorID, lines, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", orderdomain.ErrInvalidOrder, err)
	}
	o.CreatedAt = s.now().UTC()
	o.UpdatedAt = o.CreatedAt
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.metrics.orderPlaced(ctx, origin)
	s.log.InfoContext(ctx, "order placed",
		"order_id", o.ID, "vendor_id", vendorID, "total", o.Total.String(), "supplier", o.Supplier, "origin", origin)
	return o, nil
}

func (s *OrderService) transition(ctx context.Context, supplierID, orderID uuid.UUID, action domainsvcs.Action) (*models.Order, error) {
	o, err := s.supplierOrder(ctx, supplierID, orderID)
	if err != nil {
		return nil, err
	}
	to, err := domainsvcs.Transition(o.Status, action)
	if err != nil {
		return nil, err
	}

	from := o.Status
	if action == domainsvcs.ActionReject {
		err = s.repo.Delete(ctx, o)
	} else {
		err = s.repo.UpdateStatus(ctx, o, to)
	}
	if err != nil {
		if errors.Is(err, orderdomain.ErrConcurrentUpdate) {
			s.log.WarnContext(ctx, "order changed concurrently", "order_id", orderID, "action", string(action))
		}
		return nil, err
	}

	s.metrics.transitioned(ctx, string(action))
	s.log.InfoContext(ctx, "order transitioned",
		"order_id", orderID, "supplier_id", supplierID, "action", string(action), "from", from.String())
	return o, nil
}

func (s *OrderService) supplierOrder(ctx context.Context, supplierID, orderID uuid.UUID) (*models.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.VisibleTo(supplierID) {
		return nil, orderdomain.ErrOrderNotFound
	}
	return o, nil
}
