package services

import (
	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Product *ProductService
}

// New wires the catalog services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	categories := postgres.NewCategoryRepository(a.Db)
	var productCache ProductCache
	if a.Redis != nil {
		productCache = cache.NewProductCache(a.Redis)
	}
	return &Services{
		Product: NewProductService(repo, categories, productCache, a.Logger),
	}
}
