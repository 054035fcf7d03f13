package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ryotaki/karuta-api/internal/config"
	"github.com/ryotaki/karuta-api/internal/platform/fsstore"
	"github.com/ryotaki/karuta-api/internal/service"
	"github.com/ryotaki/karuta-api/internal/store"
)

// application holds the shared dependencies for the server: the loaded
// configuration, the logger, and the resolution service over the
// immutable catalog. Everything here is read-only after construction,
// which is what makes the request handlers safe without locking.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	assets   store.AssetStore
	catalog  store.CatalogStore
	resolver *service.ResolutionService
}

// newApplication builds the full dependency graph: asset store, catalog
// load, optional eager integrity validation, and the resolution service.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	assets := fsstore.NewAssetStore(cfg.Catalog.ContentDir, log)

	catalog, err := fsstore.NewLoader(assets, log).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	resolver := service.NewResolutionService(catalog, assets, log)

	if cfg.Catalog.ValidateAssets {
		report, err := resolver.VerifyIntegrity(ctx)
		if err != nil {
			return nil, fmt.Errorf("integrity scan aborted: %w", err)
		}
		for _, warning := range report.Warnings {
			log.Warn("catalog integrity warning", slog.String("detail", warning))
		}
		if !report.OK() {
			return nil, fmt.Errorf("catalog failed integrity validation with %d dangling references:\n%s",
				len(report.Errors), strings.Join(report.Errors, "\n"))
		}
		log.Info("catalog passed eager asset validation",
			slog.Int("assets_checked", report.AssetsChecked))
	}

	return &application{
		config:   cfg,
		logger:   log,
		assets:   assets,
		catalog:  catalog,
		resolver: resolver,
	}, nil
}
