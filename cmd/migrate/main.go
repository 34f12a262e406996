package main

import (
	"context"
	"os"

	"github.com/ghuser/productcatalog/migrations/catalog"
	"github.com/ghuser/productcatalog/pkg/config"
	"github.com/ghuser/productcatalog/pkg/logger"
	"github.com/ghuser/productcatalog/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, catalog.FS, log); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
}
