package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryotaki/karuta-api/internal/domain"
	"github.com/ryotaki/karuta-api/internal/store"
)

// ResolutionService turns client-supplied names into catalog metadata
// or asset streams. It holds no state of its own: the catalog is
// immutable and the asset store is read-only, so the service is safe
// for concurrent use and no operation is ever retried.
type ResolutionService struct {
	catalog store.CatalogStore
	assets  store.AssetStore
	logger  *slog.Logger
}

// NewResolutionService creates a ResolutionService over the given
// catalog and asset store.
func NewResolutionService(
	catalog store.CatalogStore,
	assets store.AssetStore,
	log *slog.Logger,
) *ResolutionService {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ResolutionService")
	}

	return &ResolutionService{
		catalog: catalog,
		assets:  assets,
		logger:  log.With(slog.String("component", "resolution_service")),
	}
}

// GetDeckMetadata returns the deck record with the given name.
func (s *ResolutionService) GetDeckMetadata(ctx context.Context, name string) (*domain.Deck, error) {
	return s.catalog.FindDeck(name)
}

// DeckNames returns every deck name, sorted.
func (s *ResolutionService) DeckNames(ctx context.Context) []string {
	return s.catalog.DeckNames()
}

// GetDeckCover resolves the named deck, then opens its cover in the
// Covers bucket. An unknown deck name fails without touching the asset
// store.
func (s *ResolutionService) GetDeckCover(ctx context.Context, name string) (*store.Asset, error) {
	deck, err := s.catalog.FindDeck(name)
	if err != nil {
		return nil, err
	}
	return s.assets.Open(ctx, store.BucketCovers, deck.Cover)
}

// GetCardVisual opens the named asset in the Visuals bucket. The asset
// name is taken as given by the caller rather than derived from a found
// card: visual retrieval is not validated against "does some card
// reference this file", only "does this file exist in the bucket".
func (s *ResolutionService) GetCardVisual(ctx context.Context, assetName string) (*store.Asset, error) {
	return s.assets.Open(ctx, store.BucketVisuals, assetName)
}

// GetCardAudio opens the named asset in the Sounds bucket. Same direct
// resolution as GetCardVisual.
func (s *ResolutionService) GetCardAudio(ctx context.Context, assetName string) (*store.Asset, error) {
	return s.assets.Open(ctx, store.BucketAudio, assetName)
}

// Categories returns every category in declaration order.
func (s *ResolutionService) Categories(ctx context.Context) []domain.Category {
	return s.catalog.Categories()
}

// Types returns the distinct type labels.
func (s *ResolutionService) Types(ctx context.Context) []string {
	return s.catalog.Types()
}

// CategoriesAndTypes returns the combined category/type payload.
func (s *ResolutionService) CategoriesAndTypes(ctx context.Context) *domain.CategoryIndex {
	return &domain.CategoryIndex{
		Categories: s.catalog.Categories(),
		Types:      s.catalog.Types(),
	}
}

// GetCategoryIcon resolves the named category, then opens its icon in
// the category-icon bucket.
func (s *ResolutionService) GetCategoryIcon(ctx context.Context, name string) (*store.Asset, error) {
	category, err := s.catalog.FindCategory(name)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.Open(ctx, store.BucketCategoryIcons, category.Icon)
	if err != nil {
		return nil, fmt.Errorf("icon for category %q: %w", name, err)
	}
	return asset, nil
}

// ThemeNames returns the theme file names discovered at load time.
func (s *ResolutionService) ThemeNames(ctx context.Context) []string {
	return s.catalog.ThemeNames()
}

// GetTheme opens the named theme file from the Themes bucket. Themes
// have no catalog record; the file itself is the payload.
func (s *ResolutionService) GetTheme(ctx context.Context, name string) (*store.Asset, error) {
	return s.assets.Open(ctx, store.BucketThemes, name)
}
