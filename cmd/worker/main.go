package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/productcatalog/pkg/config"
	"github.com/ghuser/productcatalog/pkg/database"
	"github.com/ghuser/productcatalog/pkg/events"
	"github.com/ghuser/productcatalog/pkg/logger"
	"github.com/ghuser/productcatalog/pkg/telemetry"
	"github.com/ghuser/productcatalog/services/catalog/application/subscribers"
	catalogevents "github.com/ghuser/productcatalog/services/catalog/domain/events"
)

const consumerGroupSuffix = "-change-log"

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

	log := logger.New(cfg).With("process", "worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), cfg.ServiceName+consumerGroupSuffix, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.InitializeTopics(catalogevents.Topics()...); err != nil {
		log.Error("failed to initialize event topics", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if err := registerSubscribers(ctx, eventBus, log); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the change log to every catalog topic.
func registerSubscribers(ctx context.Context, bus *events.EventBus, log logger.Logger) error {
	changeLog := subscribers.NewChangeLog(log)
	topics := catalogevents.Topics()

	for _, topic := range topics {
		errCh, err := bus.Subscribe(ctx, topic, changeLog.Handle)
		if err != nil {
			return err
		}
		// Drain subscriber errors so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}
