package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ryotaki/karuta-api/internal/api/shared"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
	"github.com/ryotaki/karuta-api/internal/service"
)

// MediaHandler serves card visuals and audio. These endpoints resolve
// the client-supplied asset name directly against the bucket, without a
// catalog lookup: existence in the bucket is the only check.
type MediaHandler struct {
	resolver *service.ResolutionService
	logger   *slog.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(resolver *service.ResolutionService, log *slog.Logger) *MediaHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for MediaHandler")
	}

	return &MediaHandler{
		resolver: resolver,
		logger:   log.With(slog.String("component", "media_handler")),
	}
}

// GetVisual handles GET /visual/{name} requests.
func (h *MediaHandler) GetVisual(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	asset, err := h.resolver.GetCardVisual(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	respondWithAsset(w, r, log, asset)
}

// GetSound handles GET /sound/{name} requests.
func (h *MediaHandler) GetSound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	asset, err := h.resolver.GetCardAudio(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	respondWithAsset(w, r, log, asset)
}
