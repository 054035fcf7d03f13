package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ryotaki/karuta-api/internal/api/shared"
	"github.com/ryotaki/karuta-api/internal/platform/logger"
	"github.com/ryotaki/karuta-api/internal/service"
)

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	resolver *service.ResolutionService
	logger   *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(resolver *service.ResolutionService, log *slog.Logger) *DeckHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		resolver: resolver,
		logger:   log.With(slog.String("component", "deck_handler")),
	}
}

// GetMetadata handles GET /deck/metadata/{name} requests.
// It returns the full deck record as JSON.
func (h *DeckHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck name is required")
		return
	}

	deck, err := h.resolver.GetDeckMetadata(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deck metadata resolved", slog.String("deck", name))
	shared.RespondWithJSON(w, r, http.StatusOK, deck)
}

// GetNames handles GET /deck/names requests.
// It returns the sorted deck names, one per line.
func (h *DeckHandler) GetNames(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithNameList(w, r, h.resolver.DeckNames(r.Context()))
}

// GetCover handles GET /deck/cover/{name} requests.
// The name is a deck name, not a filename: the cover asset is resolved
// through the deck record.
func (h *DeckHandler) GetCover(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name := chi.URLParam(r, "name")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Deck name is required")
		return
	}

	asset, err := h.resolver.GetDeckCover(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	respondWithAsset(w, r, log, asset)
}
