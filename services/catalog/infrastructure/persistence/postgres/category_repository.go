package postgres

import (
	"context"
	"fmt"

	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/postgres/db"
)

// CategoryRepository implements repositories.CategoryRepository against PostgreSQL.
type CategoryRepository struct {
	db *database.Database
}

func NewCategoryRepository(database *database.Database) *CategoryRepository {
	return &CategoryRepository{db: database}
}

func (r *CategoryRepository) List(ctx context.Context) ([]string, error) {
	names, err := db.New(r.db.DB()).ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return names, nil
}

// Add inserts name unless it is already present.
func (r *CategoryRepository) Add(ctx context.Context, name string) error {
	if err := db.New(r.db.DB()).InsertCategory(ctx, name); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}
