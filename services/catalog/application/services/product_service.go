package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/pkg/logger"
	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	"github.com/sevakart/marketplace/services/catalog/domain/models"
	"github.com/sevakart/marketplace/services/catalog/domain/repositories"
	domainsvcs "github.com/sevakart/marketplace/services/catalog/domain/services"
)

// ProductCache is the read-through cache used by GetByID.
// *pkgcache.ProductCache satisfies it.
type ProductCache interface {
	Get(ctx context.Context, productID uuid.UUID) (*pkgcache.CachedProduct, error)
	Set(ctx context.Context, p *pkgcache.CachedProduct) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ProductInput is the writable state of a product as submitted by a supplier.
type ProductInput struct {
	Name         string
	Price        decimal.Decimal
	Unit         string
	Category     models.CategoryChoice
	SupplierName string
	Stock        int
	Image        *string
}

// ProductService orchestrates product management and catalog reads.
// Event publishing is handled by the repository layer (outbox pattern).
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	cache      ProductCache // nil disables caching
	log        logger.Logger
}

// NewProductService returns a ProductService. cache may be nil.
func NewProductService(repo repositories.ProductRepository, categories repositories.CategoryRepository, cache ProductCache, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, cache: cache, log: log}
}

// Create validates in and persists a new product for supplierID. A NewCategory
// choice is appended to the vocabulary before the product is saved.
func (s *ProductService) Create(ctx context.Context, supplierID uuid.UUID, in ProductInput) (*models.Product, error) {
	params, err := s.prepare(ctx, supplierID, uuid.Nil, in)
	if err != nil {
		return nil, err
	}

	p, err := models.NewProduct(supplierID, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.addCategoryIfNew(ctx, in.Category); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.log.InfoContext(ctx, "product created", "product_id", p.ID, "supplier_id", supplierID)
	return p, nil
}

// Update replaces the writable fields of a product owned by supplierID.
// Products of other suppliers are reported as not found.
func (s *ProductService) Update(ctx context.Context, supplierID, id uuid.UUID, in ProductInput) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p.SupplierID != supplierID {
		return nil, catalogdomain.ErrProductNotFound
	}

	params, err := s.prepare(ctx, supplierID, id, in)
	if err != nil {
		return nil, err
	}
	if err := s.addCategoryIfNew(ctx, in.Category); err != nil {
		return nil, err
	}

	p.Apply(params)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

// Delete removes a product owned by supplierID. Existing orders keep their
// line items because they are stored by value.
func (s *ProductService) Delete(ctx context.Context, supplierID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, supplierID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// GetByID retrieves a Product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCached(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		entry := ToCached(p)
		go func() {
			if err := s.cache.Set(context.Background(), entry); err != nil {
				s.log.Warn("product cache warm failed", "product_id", entry.ID, "error", err)
			}
		}()
	}
	return p, nil
}

// List returns the whole catalog.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListBySupplier returns the products owned by supplierID.
func (s *ProductService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.Product, error) {
	products, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier products: %w", err)
	}
	return products, nil
}

// Browse loads the catalog and applies either a search or a category filter.
// A non-blank query takes precedence over category since the two never compose.
func (s *ProductService) Browse(ctx context.Context, query, category string) ([]*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	view := domainsvcs.NewView(products)
	if query != "" {
		view = view.Search(query)
	} else {
		view = view.FilterByCategory(category)
	}
	return view.Products(), nil
}

// FindByName resolves a live product by case-insensitive name.
func (s *ProductService) FindByName(ctx context.Context, name string) (*models.Product, bool, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, false, err
	}
	p, ok := domainsvcs.FindByName(products, name)
	return p, ok, nil
}

// Categories returns the vocabulary with "all" first.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	stored, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return models.Vocabulary(stored), nil
}

// AddCategory appends name to the vocabulary.
func (s *ProductService) AddCategory(ctx context.Context, name string) error {
	choice := models.NewCategory(name)
	if err := choice.Validate(); err != nil {
		return fmt.Errorf("%w: %w", catalogdomain.ErrInvalidCategory, err)
	}
	return s.addCategoryIfNew(ctx, choice)
}

// prepare runs every write-time check before anything is persisted.
func (s *ProductService) prepare(ctx context.Context, supplierID, excludeID uuid.UUID, in ProductInput) (models.ProductParams, error) {
	name, err := models.NewProductName(in.Name)
	if err != nil {
		return models.ProductParams{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	unit, err := models.ParseUnit(in.Unit)
	if err != nil {
		return models.ProductParams{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}
	if err := in.Category.Validate(); err != nil {
		return models.ProductParams{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidCategory, err)
	}
	if !in.Category.IsNew() {
		stored, err := s.categories.List(ctx)
		if err != nil {
			return models.ProductParams{}, fmt.Errorf("list categories: %w", err)
		}
		if !slices.Contains(stored, in.Category.Name()) {
			return models.ProductParams{}, fmt.Errorf("%w: unknown category %q", catalogdomain.ErrInvalidCategory, in.Category.Name())
		}
	}

	params := models.ProductParams{
		Name:         name,
		Price:        in.Price,
		Unit:         unit,
		Category:     in.Category.Name(),
		SupplierName: in.SupplierName,
		Stock:        in.Stock,
		Image:        in.Image,
	}
	if err := domainsvcs.ValidateProductParams(params); err != nil {
		return models.ProductParams{}, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	existing, err := s.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return models.ProductParams{}, fmt.Errorf("list supplier products: %w", err)
	}
	if domainsvcs.NameTaken(existing, supplierID, name, excludeID) {
		return models.ProductParams{}, catalogdomain.ErrProductAlreadyExists
	}
	return params, nil
}

func (s *ProductService) addCategoryIfNew(ctx context.Context, c models.CategoryChoice) error {
	if !c.IsNew() {
		return nil
	}
	if err := s.categories.Add(ctx, c.Name()); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "product cache invalidation failed", "product_id", id, "error", err)
	}
}

// ToCached converts a Product into its cache read model.
func ToCached(p *models.Product) *pkgcache.CachedProduct {
	c := &pkgcache.CachedProduct{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		Name:         p.Name.String(),
		Price:        p.Price,
		Unit:         p.Unit.String(),
		Category:     p.Category,
		SupplierName: p.SupplierName,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	return c
}

func fromCached(c *pkgcache.CachedProduct) *models.Product {
	p := &models.Product{
		ID:           c.ID,
		Name:         models.ProductName(c.Name),
		Price:        c.Price,
		Unit:         models.Unit(c.Unit),
		Category:     c.Category,
		SupplierID:   c.SupplierID,
		SupplierName: c.SupplierName,
		Stock:        c.Stock,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.Image != "" {
		img := c.Image
		p.Image = &img
	}
	return p
}
