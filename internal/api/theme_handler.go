package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ryotaki/karuta-api/internal/api/shared"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
	"github.com/ryotaki/karuta-api/internal/service"
)

// ThemeHandler serves the theme listing and theme files. There is no
// catalog record behind a theme; the name list was frozen at load time
// and the file itself is the payload.
type ThemeHandler struct {
	resolver *service.ResolutionService
	logger   *slog.Logger
}

// NewThemeHandler creates a new ThemeHandler
func NewThemeHandler(resolver *service.ResolutionService, log *slog.Logger) *ThemeHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ThemeHandler")
	}

	return &ThemeHandler{
		resolver: resolver,
		logger:   log.With(slog.String("component", "theme_handler")),
	}
}

// GetNames handles GET /theme/names requests.
func (h *ThemeHandler) GetNames(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithNameList(w, r, h.resolver.ThemeNames(r.Context()))
}

// GetTheme handles GET /theme/{name} requests.
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	asset, err := h.resolver.GetTheme(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	respondWithAsset(w, r, log, asset)
}
