package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/services/order/application/handlers"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
)

// OrderRoutes registers the order endpoints on the provided chi router.
// Listing, reading, the dashboard and the feed are role-scoped; placing
// orders needs a vendor and lifecycle actions need a supplier.
func OrderRoutes(r chi.Router, svcs *appsvcs.Services) {
	transitions := handlers.NewTransitionHandler(svcs)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
		r.Get("/summary", handlers.NewSummaryHandler(svcs).Execute)
		r.Get("/stream", handlers.NewStreamHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetOrderHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleVendor))
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Post("/checkout", handlers.NewCheckoutHandler(svcs).Execute)
			r.Post("/{id}/reorder", handlers.NewReorderHandler(svcs).Execute)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleSupplier))
			r.Get("/customers", handlers.NewCustomersHandler(svcs).Execute)
			r.Post("/{id}/accept", transitions.Accept)
			r.Post("/{id}/reject", transitions.Reject)
			r.Post("/{id}/deliver", transitions.Deliver)
		})
	})
}
