package services

import (
	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the inventory context.
type Services struct {
	Inventory *InventoryService
}

// New wires the inventory service to the catalog and order contexts.
func New(a *app.Application, catalog ProductLister, orders Reorderer) *Services {
	repo := postgres.NewInventoryRepository(a.Db, a.EventBus)
	return &Services{
		Inventory: NewInventoryService(repo, catalog, orders, a.Logger),
	}
}
