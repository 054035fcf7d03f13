package api

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/ryotaki/karuta-api/internal/store"
)

// respondWithAsset streams an opened asset to the client, labelling it
// with a Content-Type inferred from the filename extension. The asset
// is always closed. Write failures after the header has gone out can
// only be logged; the status code is already committed.
func respondWithAsset(w http.ResponseWriter, r *http.Request, log *slog.Logger, asset *store.Asset) {
	defer func() {
		if err := asset.Close(); err != nil {
			log.Warn("failed to close asset", slog.String("asset", asset.Name), slog.String("error", err.Error()))
		}
	}()

	contentType := mime.TypeByExtension(filepath.Ext(asset.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, asset.Content); err != nil {
		log.Error("failed to stream asset",
			slog.String("asset", asset.Name),
			slog.String("error", err.Error()))
	}
}
