package app

import (
	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/pkg/config"
	"github.com/ghuser/productcatalog/pkg/database"
	"github.com/ghuser/productcatalog/pkg/events"
	"github.com/ghuser/productcatalog/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use its context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "product created", "product_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus // nil disables change events
	Tokens   *auth.TokenService
}
