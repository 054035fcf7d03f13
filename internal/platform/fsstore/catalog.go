package fsstore

import (
	"slices"

	"github.com/ryotaki/karuta-api/internal/domain"
	"github.com/ryotaki/karuta-api/internal/store"
)

// Catalog is the immutable in-memory catalog index built by the Loader.
// It is constructed once before any request is served and thereafter
// shared by every concurrent request without locking: there is no write
// path, so read access needs no mutual exclusion. Accessors that return
// slices return copies to keep the shared state untouchable.
type Catalog struct {
	decks          map[string]*domain.Deck
	deckNames      []string
	categories     []domain.Category
	categoryByName map[string]int
	types          []string
	themeNames     []string
}

// FindDeck returns the deck with the given name, matched exactly and
// case-sensitively.
func (c *Catalog) FindDeck(name string) (*domain.Deck, error) {
	deck, ok := c.decks[name]
	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return deck, nil
}

// DeckNames returns every deck name, sorted.
func (c *Catalog) DeckNames() []string {
	return slices.Clone(c.deckNames)
}

// FindCategory returns the category with the given name.
func (c *Catalog) FindCategory(name string) (*domain.Category, error) {
	i, ok := c.categoryByName[name]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return &c.categories[i], nil
}

// Categories returns every category in declaration order.
func (c *Catalog) Categories() []domain.Category {
	return slices.Clone(c.categories)
}

// Types returns the distinct type labels in first-appearance order.
func (c *Catalog) Types() []string {
	return slices.Clone(c.types)
}

// ThemeNames returns the theme filenames discovered at load time, sorted.
func (c *Catalog) ThemeNames() []string {
	return slices.Clone(c.themeNames)
}

// compile-time interface check
var _ store.CatalogStore = (*Catalog)(nil)
