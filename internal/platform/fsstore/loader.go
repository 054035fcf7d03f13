package fsstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/ryotaki/karuta-api/internal/domain"
	"github.com/ryotaki/karuta-api/internal/store"
)

// categoryIndexFile is the single source file for categories and types,
// stored inside the category-icon bucket directory.
const categoryIndexFile = "Categories.json"

// themeExtension marks a file in the Themes bucket as a theme.
const themeExtension = ".json"

// Loader builds the immutable Catalog from the asset store's Decks
// bucket and category index at startup. Any parse failure on any source
// file is fatal: the service must not start with a partially loaded
// catalog, so Load never skips a bad file.
type Loader struct {
	assets store.AssetStore
	logger *slog.Logger
}

// NewLoader creates a Loader reading from the given asset store.
func NewLoader(assets store.AssetStore, log *slog.Logger) *Loader {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Loader")
	}

	return &Loader{
		assets: assets,
		logger: log.With(slog.String("component", "catalog_loader")),
	}
}

// Load scans the Decks bucket, parses every file found as one deck,
// parses the category index, and discovers the theme file set. The
// returned Catalog is complete and immutable; on any error the catalog
// is unusable and the caller must abort startup.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	decks, deckNames, err := l.loadDecks(ctx)
	if err != nil {
		return nil, err
	}

	index, err := l.loadCategoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	categoryByName := make(map[string]int, len(index.Categories))
	for i, cat := range index.Categories {
		if _, exists := categoryByName[cat.Name]; exists {
			return nil, fmt.Errorf("category %q: %w", cat.Name, domain.ErrDuplicateName)
		}
		categoryByName[cat.Name] = i
	}

	themeNames, err := l.loadThemeNames(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		decks:          decks,
		deckNames:      deckNames,
		categories:     index.Categories,
		categoryByName: categoryByName,
		types:          dedupeTypes(index.Types),
		themeNames:     themeNames,
	}

	l.logger.Info("catalog loaded",
		slog.Int("decks", len(catalog.deckNames)),
		slog.Int("categories", len(catalog.categories)),
		slog.Int("types", len(catalog.types)),
		slog.Int("themes", len(catalog.themeNames)))

	return catalog, nil
}

// loadDecks parses every file in the Decks bucket as one deck record.
// Duplicate deck names are rejected: the name is the catalog's unique
// key, and silently keeping one of the two would make lookups depend on
// directory enumeration order.
func (l *Loader) loadDecks(ctx context.Context) (map[string]*domain.Deck, []string, error) {
	files, err := l.assets.List(ctx, store.BucketDecks)
	if err != nil {
		return nil, nil, fmt.Errorf("scan decks directory: %w", err)
	}

	decks := make(map[string]*domain.Deck, len(files))
	names := make([]string, 0, len(files))

	for _, file := range files {
		deck, err := l.loadDeckFile(ctx, file)
		if err != nil {
			return nil, nil, err
		}

		if _, exists := decks[deck.Name]; exists {
			return nil, nil, fmt.Errorf("deck file %s: deck %q: %w", file, deck.Name, domain.ErrDuplicateName)
		}
		decks[deck.Name] = deck
		names = append(names, deck.Name)

		l.logger.Debug("deck loaded",
			slog.String("file", file),
			slog.String("name", deck.Name),
			slog.Int("cards", len(deck.Cards)))
	}

	sort.Strings(names)
	return decks, names, nil
}

func (l *Loader) loadDeckFile(ctx context.Context, file string) (*domain.Deck, error) {
	asset, err := l.assets.Open(ctx, store.BucketDecks, file)
	if err != nil {
		return nil, fmt.Errorf("open deck file %s: %w", file, err)
	}
	defer func() {
		_ = asset.Close()
	}()

	var deck domain.Deck
	if err := json.NewDecoder(asset.Content).Decode(&deck); err != nil {
		return nil, fmt.Errorf("parse deck file %s: %w", file, err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("deck file %s: %w", file, err)
	}

	return &deck, nil
}

func (l *Loader) loadCategoryIndex(ctx context.Context) (*domain.CategoryIndex, error) {
	asset, err := l.assets.Open(ctx, store.BucketCategoryIcons, categoryIndexFile)
	if err != nil {
		return nil, fmt.Errorf("open category index %s: %w", categoryIndexFile, err)
	}
	defer func() {
		_ = asset.Close()
	}()

	var index domain.CategoryIndex
	if err := json.NewDecoder(asset.Content).Decode(&index); err != nil {
		return nil, fmt.Errorf("parse category index %s: %w", categoryIndexFile, err)
	}
	if err := index.Validate(); err != nil {
		return nil, fmt.Errorf("category index %s: %w", categoryIndexFile, err)
	}

	return &index, nil
}

// loadThemeNames freezes the theme file listing into the catalog: the
// Themes bucket is scanned once here, never per request.
func (l *Loader) loadThemeNames(ctx context.Context) ([]string, error) {
	files, err := l.assets.List(ctx, store.BucketThemes)
	if err != nil {
		return nil, fmt.Errorf("scan themes directory: %w", err)
	}

	themes := make([]string, 0, len(files))
	for _, file := range files {
		if strings.HasSuffix(file, themeExtension) {
			themes = append(themes, file)
		}
	}

	return themes, nil
}

// dedupeTypes collapses duplicate type labels, preserving the order of
// first appearance. The source format permits duplicates but queries
// treat the list as a set.
func dedupeTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
