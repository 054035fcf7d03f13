package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ryotaki/karuta-api/internal/api"
	"github.com/ryotaki/karuta-api/internal/domain"
	"github.com/ryotaki/karuta-api/internal/platform/fsstore"
	"github.com/ryotaki/karuta-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupRouter builds a full handler stack over a real filesystem
// content root holding one deck, one category, and one theme.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("Decks/sample.json", `{
		"name": "Sample",
		"category": "Intro",
		"type": "Easy",
		"cover": "sample.png",
		"cards": [{"anime": "X", "type": "song", "visual": "v1.png", "audio": "a1.mp3"}]
	}`)
	write("Categories/Categories.json", `{
		"categories": [{"name": "Intro", "icon": "intro.png"}],
		"types": ["Easy", "Hard"]
	}`)
	write("Categories/intro.png", "icon-bytes")
	write("Covers/sample.png", "cover-bytes")
	write("Visuals/v1.png", "visual-bytes")
	write("Sounds/a1.mp3", "audio-bytes")
	write("Themes/dark.json", `{"background": "#000"}`)
	write("Themes/notes.txt", "not a theme")

	log := testLogger()
	assets := fsstore.NewAssetStore(root, log)
	catalog, err := fsstore.NewLoader(assets, log).Load(context.Background())
	require.NoError(t, err)

	resolver := service.NewResolutionService(catalog, assets, log)

	deckHandler := api.NewDeckHandler(resolver, log)
	mediaHandler := api.NewMediaHandler(resolver, log)
	categoryHandler := api.NewCategoryHandler(resolver, log)
	themeHandler := api.NewThemeHandler(resolver, log)

	r := chi.NewRouter()
	r.Get("/deck/metadata/{name}", deckHandler.GetMetadata)
	r.Get("/deck/names", deckHandler.GetNames)
	r.Get("/deck/cover/{name}", deckHandler.GetCover)
	r.Get("/visual/{name}", mediaHandler.GetVisual)
	r.Get("/sound/{name}", mediaHandler.GetSound)
	r.Get("/categories", categoryHandler.List)
	r.Get("/types", categoryHandler.ListTypes)
	r.Get("/categories_and_types", categoryHandler.ListCombined)
	r.Get("/category/icon/{name}", categoryHandler.GetIcon)
	r.Get("/theme/names", themeHandler.GetNames)
	r.Get("/theme/{name}", themeHandler.GetTheme)

	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDeckMetadataEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("known deck", func(t *testing.T) {
		rec := get(t, router, "/deck/metadata/Sample")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var deck domain.Deck
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deck))
		assert.Equal(t, "Sample", deck.Name)
		assert.Equal(t, "Intro", deck.Category)
		assert.Equal(t, "Easy", deck.Type)
		assert.Equal(t, "sample.png", deck.Cover)
		require.Len(t, deck.Cards, 1)
		assert.Equal(t, "v1.png", deck.Cards[0].Visual)
	})

	t.Run("unknown deck", func(t *testing.T) {
		rec := get(t, router, "/deck/metadata/Unknown")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Deck not found", body["error"])
	})
}

func TestDeckNamesEndpoint(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/deck/names")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "Sample\n", rec.Body.String())
}

func TestDeckCoverEndpoint(t *testing.T) {
	router := setupRouter(t)

	t.Run("known deck", func(t *testing.T) {
		rec := get(t, router, "/deck/cover/Sample")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "cover-bytes", rec.Body.String())
	})

	t.Run("unknown deck", func(t *testing.T) {
		rec := get(t, router, "/deck/cover/Unknown")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMediaEndpoints(t *testing.T) {
	router := setupRouter(t)

	t.Run("visual", func(t *testing.T) {
		rec := get(t, router, "/visual/v1.png")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "visual-bytes", rec.Body.String())
	})

	t.Run("sound", func(t *testing.T) {
		rec := get(t, router, "/sound/a1.mp3")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "audio-bytes", rec.Body.String())
	})

	t.Run("missing asset", func(t *testing.T) {
		rec := get(t, router, "/visual/missing.png")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// TestTraversalNameIsNotFound drives the handler directly with a
// traversal name as the route parameter; it must come back as a plain
// 404, indistinguishable from a missing file.
func TestTraversalNameIsNotFound(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/visual/placeholder", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("name", "../../etc/passwd")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	router := setupRouter(t)

	t.Run("categories", func(t *testing.T) {
		rec := get(t, router, "/categories")
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []domain.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		assert.Equal(t, []domain.Category{{Name: "Intro", Icon: "intro.png"}}, categories)
	})

	t.Run("types", func(t *testing.T) {
		rec := get(t, router, "/types")
		require.Equal(t, http.StatusOK, rec.Code)

		var types []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
		assert.Equal(t, []string{"Easy", "Hard"}, types)
	})

	t.Run("combined payload", func(t *testing.T) {
		rec := get(t, router, "/categories_and_types")
		require.Equal(t, http.StatusOK, rec.Code)

		var payload domain.CategoryIndex
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Len(t, payload.Categories, 1)
		assert.Equal(t, []string{"Easy", "Hard"}, payload.Types)
	})

	t.Run("icon", func(t *testing.T) {
		rec := get(t, router, "/category/icon/Intro")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "icon-bytes", rec.Body.String())
	})

	t.Run("unknown category icon", func(t *testing.T) {
		rec := get(t, router, "/category/icon/Unknown")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Category not found", body["error"])
	})
}

func TestThemeEndpoints(t *testing.T) {
	router := setupRouter(t)

	t.Run("names filter to themes", func(t *testing.T) {
		rec := get(t, router, "/theme/names")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dark.json\n", rec.Body.String())
	})

	t.Run("theme payload", func(t *testing.T) {
		rec := get(t, router, "/theme/dark.json")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"background": "#000"}`, rec.Body.String())
	})

	t.Run("non-theme file is still served by name", func(t *testing.T) {
		// The listing filters to .json, but retrieval is by filename.
		rec := get(t, router, "/theme/notes.txt")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
