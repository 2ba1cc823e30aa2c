package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/services/catalog/application/handlers"
	appsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
)

// CatalogRoutes registers product and category endpoints on the provided chi
// router. Reads are open to any authenticated account; writes need a supplier.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services) {
	categories := handlers.NewCategoriesHandler(svcs)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleSupplier))
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categories.List)
		r.With(auth.RequireRole(auth.RoleSupplier)).Post("/", categories.Add)
	})
}
