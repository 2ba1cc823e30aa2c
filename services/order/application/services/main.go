package services

import (
	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/services/order/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the order context.
type Services struct {
	Order *OrderService
	Feed  *cache.OrderFeed // nil without Redis; disables the realtime stream
}

// New wires the order service to the catalog and cart contexts.
func New(a *app.Application, catalog ProductCatalog, cart Cart) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	var feed *cache.OrderFeed
	if a.Redis != nil {
		feed = cache.NewOrderFeed(a.Redis)
	}
	return &Services{
		Order: NewOrderService(repo, catalog, cart, a.Logger),
		Feed:  feed,
	}
}
