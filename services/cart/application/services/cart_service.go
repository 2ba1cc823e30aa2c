package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sevakart/marketplace/pkg/logger"
	cartdomain "github.com/sevakart/marketplace/services/cart/domain"
	"github.com/sevakart/marketplace/services/cart/domain/models"
	"github.com/sevakart/marketplace/services/cart/domain/repositories"
	catalogmodels "github.com/sevakart/marketplace/services/catalog/domain/models"
)

const (
	persistTimeout = 5 * time.Second
	loadTimeout    = 2 * time.Second
)

// ProductLookup resolves catalog products for AddProduct.
type ProductLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalogmodels.Product, error)
}

// vendorCart is the working copy of one vendor's cart. It lives only while a
// request or a background write holds it (refs, guarded by CartService.mu).
// synced is set once cart reflects the store; pending counts writes not yet
// finished. gen counts mutations; written is the newest gen already stored.
type vendorCart struct {
	mu      sync.Mutex
	refs    int
	synced  bool
	cart    models.Cart
	gen     uint64
	pending int
	writeMu sync.Mutex
	written uint64
}

// CartService serves carts from the CartStore. Each access re-reads the
// stored snapshot unless writes of this process are still in flight, in
// which case the working copy is newer. Mutations return as soon as the
// working copy is updated; the store write runs in the background and a
// newer snapshot always wins over an older one. Clear is the exception and
// waits for its write. A cart whose snapshot could not be read is shown
// empty and is never written back, so a flaky store cannot wipe it.
type CartService struct {
	store   repositories.CartStore
	catalog ProductLookup
	log     logger.Logger

	mu    sync.Mutex
	carts map[uuid.UUID]*vendorCart
	wg    sync.WaitGroup
}

func NewCartService(store repositories.CartStore, catalog ProductLookup, log logger.Logger) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
		log:     log,
		carts:   make(map[uuid.UUID]*vendorCart),
	}
}

// Get returns a copy of the vendor's cart. uuid.Nil always yields an empty
// cart.
func (s *CartService) Get(ctx context.Context, vendorID uuid.UUID) models.Cart {
	if vendorID == uuid.Nil {
		return models.Cart{}
	}
	vc := s.acquire(ctx, vendorID)
	c := vc.cart.Clone()
	vc.mu.Unlock()
	s.release(vendorID, vc)
	return c
}

// AddProduct resolves productID in the catalog and adds qty of it.
func (s *CartService) AddProduct(ctx context.Context, vendorID, productID uuid.UUID, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, fmt.Errorf("%w: quantity must be at least 1", cartdomain.ErrInvalidQuantity)
	}
	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("resolve product: %w", err)
	}
	return s.Add(ctx, vendorID, p, qty)
}

// Add merges qty of p into the cart, or appends a snapshot of p.
func (s *CartService) Add(ctx context.Context, vendorID uuid.UUID, p *catalogmodels.Product, qty int) (models.Cart, error) {
	if qty < 1 {
		return models.Cart{}, fmt.Errorf("%w: quantity must be at least 1", cartdomain.ErrInvalidQuantity)
	}
	return s.mutate(ctx, vendorID, func(c *models.Cart) bool {
		c.Add(p.ID, models.SnapshotOf(p), qty)
		return true
	}), nil
}

// Remove drops productID from the cart. Absent products are not an error.
func (s *CartService) Remove(ctx context.Context, vendorID, productID uuid.UUID) models.Cart {
	return s.mutate(ctx, vendorID, func(c *models.Cart) bool {
		before := c.Count()
		c.Remove(productID)
		return c.Count() != before
	})
}

// UpdateQuantity sets the quantity of productID; qty <= 0 removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, vendorID, productID uuid.UUID, qty int) models.Cart {
	return s.mutate(ctx, vendorID, func(c *models.Cart) bool {
		return c.SetQuantity(productID, qty)
	})
}

// Replace swaps the whole cart for items.
func (s *CartService) Replace(ctx context.Context, vendorID uuid.UUID, items []models.CartItem) models.Cart {
	return s.mutate(ctx, vendorID, func(c *models.Cart) bool {
		c.Items = append([]models.CartItem(nil), items...)
		return true
	})
}

// Clear empties the cart and waits until the empty snapshot is stored.
func (s *CartService) Clear(ctx context.Context, vendorID uuid.UUID) error {
	if vendorID == uuid.Nil {
		return nil
	}
	vc := s.acquire(ctx, vendorID)
	vc.cart.Clear()
	vc.gen++
	vc.pending++
	gen := vc.gen
	vc.mu.Unlock()

	err := s.persist(ctx, vendorID, vc, gen, nil)

	vc.mu.Lock()
	vc.pending--
	if err == nil {
		vc.synced = true
	}
	vc.mu.Unlock()
	s.release(vendorID, vc)
	return err
}

// Wait blocks until every background write has finished.
func (s *CartService) Wait() {
	s.wg.Wait()
}

// mutate applies fn to the working copy and, when fn reports a change,
// schedules a background write of the resulting snapshot.
func (s *CartService) mutate(ctx context.Context, vendorID uuid.UUID, fn func(*models.Cart) bool) models.Cart {
	if vendorID == uuid.Nil {
		var c models.Cart
		fn(&c)
		return c
	}

	vc := s.acquire(ctx, vendorID)
	changed := fn(&vc.cart)
	snapshot := vc.cart.Clone()
	switch {
	case changed && vc.synced:
		vc.gen++
		vc.pending++
		gen := vc.gen
		s.retain(vc)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			defer cancel()
			if err := s.persist(ctx, vendorID, vc, gen, snapshot.Items); err != nil {
				s.log.Warn("cart snapshot write failed", "vendor_id", vendorID, "error", err)
			}
			vc.mu.Lock()
			vc.pending--
			vc.mu.Unlock()
			s.release(vendorID, vc)
		}()
	case changed:
		s.log.WarnContext(ctx, "cart store unreadable, change not saved", "vendor_id", vendorID)
	}
	vc.mu.Unlock()
	s.release(vendorID, vc)
	return snapshot
}

// persist writes items for generation gen unless a newer generation has
// already been written.
func (s *CartService) persist(ctx context.Context, vendorID uuid.UUID, vc *vendorCart, gen uint64, items []models.CartItem) error {
	vc.writeMu.Lock()
	defer vc.writeMu.Unlock()
	if gen <= vc.written {
		return nil
	}
	if err := s.store.Save(ctx, vendorID, items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	vc.written = gen
	return nil
}

// acquire returns the vendor's working copy locked and retained. The stored
// snapshot is re-read unless writes are pending. The read is detached from
// ctx so a caller hanging up cannot turn into a failed load.
func (s *CartService) acquire(ctx context.Context, vendorID uuid.UUID) *vendorCart {
	s.mu.Lock()
	vc, ok := s.carts[vendorID]
	if !ok {
		vc = &vendorCart{cart: models.Cart{VendorID: vendorID}}
		s.carts[vendorID] = vc
	}
	vc.refs++
	s.mu.Unlock()

	vc.mu.Lock()
	if vc.pending == 0 {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		items, err := s.store.Load(loadCtx, vendorID)
		cancel()
		if err != nil {
			s.log.WarnContext(ctx, "cart snapshot load failed", "vendor_id", vendorID, "error", err)
			if !vc.synced {
				vc.cart.Items = nil
			}
		} else {
			vc.cart.Items = items
			vc.synced = true
		}
	}
	return vc
}

func (s *CartService) retain(vc *vendorCart) {
	s.mu.Lock()
	vc.refs++
	s.mu.Unlock()
}

// release drops a reference and forgets the working copy once nothing holds
// it; the store keeps the cart.
func (s *CartService) release(vendorID uuid.UUID, vc *vendorCart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vc.refs--
	if vc.refs == 0 && s.carts[vendorID] == vc {
		delete(s.carts, vendorID)
	}
}

