package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ryotaki/karuta-api/internal/api"
	apiMiddleware "github.com/ryotaki/karuta-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. The route shapes are the catalog's public wire
// contract and match the original service, so clients need no changes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The catalog is consumed by browser clients on other origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	deckHandler := api.NewDeckHandler(app.resolver, app.logger)
	mediaHandler := api.NewMediaHandler(app.resolver, app.logger)
	categoryHandler := api.NewCategoryHandler(app.resolver, app.logger)
	themeHandler := api.NewThemeHandler(app.resolver, app.logger)

	// Deck endpoints
	r.Get("/deck/metadata/{name}", deckHandler.GetMetadata)
	r.Get("/deck/names", deckHandler.GetNames)
	r.Get("/deck/cover/{name}", deckHandler.GetCover)

	// Card asset endpoints
	r.Get("/visual/{name}", mediaHandler.GetVisual)
	r.Get("/sound/{name}", mediaHandler.GetSound)

	// Category endpoints
	r.Get("/categories", categoryHandler.List)
	r.Get("/types", categoryHandler.ListTypes)
	r.Get("/categories_and_types", categoryHandler.ListCombined)
	r.Get("/category/icon/{name}", categoryHandler.GetIcon)

	// Theme endpoints
	r.Get("/theme/names", themeHandler.GetNames)
	r.Get("/theme/{name}", themeHandler.GetTheme)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
