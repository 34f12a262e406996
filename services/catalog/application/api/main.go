package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/productcatalog/pkg/app"
	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/pkg/logger"
	"github.com/ghuser/productcatalog/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/productcatalog/services/catalog/application/services"
)

// CatalogRoutes registers product and item endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a), a.Tokens, a.Logger)
}

// Routes registers the catalog endpoints over an already wired service
// container. Every route needs a bearer token; reads need catalog.read and
// mutations need catalog.write.
func Routes(r chi.Router, svcs *appsvcs.Services, tokens auth.TokenValidator, log logger.Logger) {
	read := auth.RequireRole(auth.RoleCatalogRead, log)
	write := auth.RequireRole(auth.RoleCatalogWrite, log)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens, log))

		r.Route("/products", func(r chi.Router) {
			r.With(read).Get("/", handlers.NewGetProductsHandler(svcs, log).Execute)
			r.With(read).Get("/{id}", handlers.NewGetProductHandler(svcs, log).Execute)
			r.With(write).Post("/", handlers.NewPostProductHandler(svcs, log).Execute)
			r.With(write).Put("/{id}", handlers.NewPutProductHandler(svcs, log).Execute)
			r.With(write).Delete("/{id}", handlers.NewDeleteProductHandler(svcs, log).Execute)
		})

		r.Route("/item", func(r chi.Router) {
			r.With(read).Get("/", handlers.NewGetItemsHandler(svcs, log).Execute)
			r.With(read).Get("/{id}", handlers.NewGetItemHandler(svcs, log).Execute)
			r.With(write).Post("/", handlers.NewPostItemHandler(svcs, log).Execute)
			r.With(write).Put("/{id}", handlers.NewPutItemHandler(svcs, log).Execute)
			r.With(write).Delete("/{id}", handlers.NewDeleteItemHandler(svcs, log).Execute)
		})
	})
}
