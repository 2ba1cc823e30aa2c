package services

import (
	"time"

	"github.com/sevakart/marketplace/pkg/app"
	cartredis "github.com/sevakart/marketplace/services/cart/infrastructure/persistence/redis"
)

// Services is the application-layer service container for the cart context.
type Services struct {
	Cart *CartService
}

// New wires the cart service. catalog resolves product ids on add.
func New(a *app.Application, catalog ProductLookup, ttl time.Duration) *Services {
	store := cartredis.NewCartStore(a.Redis, ttl)
	return &Services{
		Cart: NewCartService(store, catalog, a.Logger),
	}
}
