package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ryotaki/karuta-api/internal/api/shared"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
	"github.com/ryotaki/karuta-api/internal/service"
)

// CategoryHandler handles category and type listing requests.
type CategoryHandler struct {
	resolver *service.ResolutionService
	logger   *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(resolver *service.ResolutionService, log *slog.Logger) *CategoryHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		resolver: resolver,
		logger:   log.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /categories requests.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.resolver.Categories(r.Context()))
}

// ListTypes handles GET /types requests.
func (h *CategoryHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.resolver.Types(r.Context()))
}

// ListCombined handles GET /categories_and_types requests.
func (h *CategoryHandler) ListCombined(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.resolver.CategoriesAndTypes(r.Context()))
}

// GetIcon handles GET /category/icon/{name} requests.
// The name is a category name; the icon asset is resolved through the
// category record.
func (h *CategoryHandler) GetIcon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Category name is required")
		return
	}

	asset, err := h.resolver.GetCategoryIcon(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	respondWithAsset(w, r, log, asset)
}
