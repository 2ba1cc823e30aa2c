package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/services/cart/application/handlers"
	appsvcs "github.com/sevakart/marketplace/services/cart/application/services"
)

// CartRoutes registers the vendor cart endpoints on the provided chi router.
func CartRoutes(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewCartHandler(svcs)
	r.Route("/cart", func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleVendor))
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.UpdateItem)
		r.Delete("/items/{productID}", h.RemoveItem)
	})
}
