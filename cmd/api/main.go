package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/productcatalog/docs/swagger"
	"github.com/ghuser/productcatalog/pkg/app"
	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/pkg/config"
	"github.com/ghuser/productcatalog/pkg/database"
	"github.com/ghuser/productcatalog/pkg/events"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	"github.com/ghuser/productcatalog/pkg/telemetry"
	accountApi "github.com/ghuser/productcatalog/services/account/application/api"
	catalogApi "github.com/ghuser/productcatalog/services/catalog/application/api"
	catalogevents "github.com/ghuser/productcatalog/services/catalog/domain/events"
)

// @title						Product Catalog API
// @version					1.0
// @description				Products and their items, guarded by bearer tokens.
// @contact.name				API Support
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:8080
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Sentry is optional: log and continue on failure.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), cfg.ServiceName, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.InitializeTopics(catalogevents.Topics()...); err != nil {
		log.Error("failed to initialize event topics", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		SigningKey:     []byte(cfg.JWTSigningKey),
		Issuer:         cfg.JWTIssuer,
		Audience:       cfg.JWTAudience,
		AccessTokenTTL: cfg.AccessTokenTTL,
	})
	if err != nil {
		log.Error("failed to setup token service", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Tokens:   tokens,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			RequestsPerMinute:  cfg.RequestsPerMinute,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logging:  logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(cfg.ServiceVersion,
		httpx.Probe{Name: "database", Pinger: pool},
		httpx.Probe{Name: "outbox", Pinger: eventBus},
	))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var routeErr error
	r.Route("/api", func(r chi.Router) {
		routeErr = registerRoutes(r, appConfig)
	})
	if routeErr != nil {
		log.Error("failed to register routes", "error", routeErr)
		os.Exit(1) //nolint:gocritic
	}

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) error {
	if err := accountApi.AccountRoutes(r, a); err != nil {
		return err
	}
	catalogApi.CatalogRoutes(r, a)
	return nil
}
