package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/services/inventory/application/handlers"
	appsvcs "github.com/sevakart/marketplace/services/inventory/application/services"
)

// InventoryRoutes registers the vendor inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, svcs *appsvcs.Services) {
	h := handlers.NewInventoryHandler(svcs)
	r.Route("/inventory", func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleVendor))
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Get("/summary", h.Summary)
		r.Put("/{id}", h.UpdateStock)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/reorder", h.Reorder)
	})
}
