package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/psecuresystem/NFT-Marketplace/pkg/app"
	"github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/handlers"
	appsvcs "github.com/psecuresystem/NFT-Marketplace/services/marketplace/application/services"
)

// MarketplaceRoutes registers marketplace endpoints on the provided chi router.
func MarketplaceRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	registry := handlers.NewRegistryHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/marketplace/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostListingHandler(svcs).Execute)
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Get("/{id}/quote", handlers.NewGetQuoteHandler(svcs).Execute)
			r.Post("/{id}/purchase", handlers.NewPostPurchaseHandler(svcs).Execute)
		})
		r.Route("/registry", func(r chi.Router) {
			r.Post("/tokens", registry.Mint)
			r.Post("/approvals", registry.Approve)
		})
	})
}
