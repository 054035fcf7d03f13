package store

import "github.com/ryotaki/karuta-api/internal/domain"

// CatalogStore is the read API over the catalog built once at startup.
// Implementations are immutable after construction and safe for
// concurrent use without locking; every operation is a pure read.
type CatalogStore interface {
	// FindDeck returns the deck with the given name, matched exactly
	// and case-sensitively. Returns ErrDeckNotFound if no deck matches.
	FindDeck(name string) (*domain.Deck, error)

	// DeckNames returns every deck name, sorted.
	DeckNames() []string

	// FindCategory returns the category with the given name. Returns
	// ErrCategoryNotFound if no category matches.
	FindCategory(name string) (*domain.Category, error)

	// Categories returns every category in declaration order.
	Categories() []domain.Category

	// Types returns the distinct type labels in first-appearance order.
	Types() []string

	// ThemeNames returns the theme filenames discovered at load time,
	// sorted.
	ThemeNames() []string
}
