package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/events"
	catalogdomain "github.com/sevakart/marketplace/services/catalog/domain"
	domainevents "github.com/sevakart/marketplace/services/catalog/domain/events"
	"github.com/sevakart/marketplace/services/catalog/domain/models"
	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given pool and
// event bus. Every write publishes its product.* event in the same transaction.
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: database, bus: bus}
}

// Save inserts p. Returns ErrProductAlreadyExists on the (supplier, lower(name)) unique index.
func (r *ProductRepository) Save(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := db.New(tx).InsertProduct(ctx, db.InsertProductParams{
			ID:           p.ID,
			SupplierID:   p.SupplierID,
			Name:         p.Name.String(),
			Price:        p.Price,
			Unit:         p.Unit.String(),
			Category:     p.Category,
			SupplierName: p.SupplierName,
			Stock:        int32(p.Stock),
			Image:        nullString(p.Image),
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return catalogdomain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}
		return r.publish(ctx, tx, domainevents.TopicProductCreated, p)
	})
}

// Update overwrites the writable columns of a product owned by p.SupplierID.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateProduct(ctx, db.UpdateProductParams{
			ID:           p.ID,
			SupplierID:   p.SupplierID,
			Name:         p.Name.String(),
			Price:        p.Price,
			Unit:         p.Unit.String(),
			Category:     p.Category,
			SupplierName: p.SupplierName,
			Stock:        int32(p.Stock),
			Image:        nullString(p.Image),
			UpdatedAt:    p.UpdatedAt,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return catalogdomain.ErrProductAlreadyExists
			}
			return fmt.Errorf("update product: %w", err)
		}
		if n == 0 {
			return catalogdomain.ErrProductNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicProductUpdated, p)
	})
}

// Delete removes a product owned by supplierID.
func (r *ProductRepository) Delete(ctx context.Context, supplierID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteProduct(ctx, db.DeleteProductParams{ID: id, SupplierID: supplierID})
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if n == 0 {
			return catalogdomain.ErrProductNotFound
		}
		return r.publish(ctx, tx, domainevents.TopicProductDeleted, &models.Product{ID: id, SupplierID: supplierID})
	})
}

// GetByID returns ErrProductNotFound when no row matches.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := db.New(r.db.DB()).ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return rowsToProducts(rows), nil
}

func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*models.Product, error) {
	rows, err := db.New(r.db.DB()).ListProductsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("query supplier products: %w", err)
	}
	return rowsToProducts(rows), nil
}

func (r *ProductRepository) publish(ctx context.Context, tx *sql.Tx, topic string, p *models.Product) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ProductEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  p.ID,
		SupplierID: p.SupplierID,
		Name:       p.Name.String(),
		Price:      p.Price,
		Category:   p.Category,
		Stock:      p.Stock,
		OccurredAt: p.UpdatedAt,
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := r.bus.PublishTx(ctx, tx, topic, event.EventID.String(), event.Version, event); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func rowsToProducts(rows []db.CatalogProduct) []*models.Product {
	out := make([]*models.Product, len(rows))
	for i, row := range rows {
		out[i] = rowToProduct(row)
	}
	return out
}

// rowToProduct maps a db.CatalogProduct to a domain models.Product.
func rowToProduct(row db.CatalogProduct) *models.Product {
	p := &models.Product{
		ID:           row.ID,
		Name:         models.ProductName(row.Name),
		Price:        row.Price,
		Unit:         models.Unit(row.Unit),
		Category:     row.Category,
		SupplierID:   row.SupplierID,
		SupplierName: row.SupplierName,
		Stock:        int(row.Stock),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Image.Valid {
		img := row.Image.String
		p.Image = &img
	}
	return p
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
