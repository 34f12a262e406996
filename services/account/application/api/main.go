package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/productcatalog/pkg/app"
	"github.com/ghuser/productcatalog/pkg/logger"
	"github.com/ghuser/productcatalog/services/account/application/handlers"
	appsvcs "github.com/ghuser/productcatalog/services/account/application/services"
)

// AccountRoutes registers the login endpoint on the provided chi router.
func AccountRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}
	Routes(r, svcs, a.Logger)
	return nil
}

// Routes registers the account endpoints over an already wired service
// container. Login is anonymous.
func Routes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.NewPostLoginHandler(svcs, log).Execute)
	})
}
