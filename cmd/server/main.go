// Package main implements the entry point for the karuta catalog API
// server, which indexes the on-disk deck catalog at startup and serves
// deck metadata, category listings, and binary assets over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/ryotaki/karuta-api/internal/config"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
)

// main loads configuration, sets up logging, builds the catalog, and
// starts the HTTP server. A corrupt catalog aborts startup: the service
// never serves traffic over a partially loaded catalog.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"content_dir", cfg.Catalog.ContentDir,
		"validate_assets", cfg.Catalog.ValidateAssets)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}
