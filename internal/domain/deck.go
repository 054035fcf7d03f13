package domain

import (
	"errors"
	"fmt"
)

// Deck-specific validation errors
var (
	// ErrDeckNameEmpty is returned when a deck has no name.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")

	// ErrDeckCoverEmpty is returned when a deck has no cover asset name.
	ErrDeckCoverEmpty = errors.New("deck cover cannot be empty")

	// ErrCardVisualEmpty is returned when a card has no visual asset name.
	ErrCardVisualEmpty = errors.New("card visual cannot be empty")

	// ErrCardAudioEmpty is returned when a card has no audio asset name.
	ErrCardAudioEmpty = errors.New("card audio cannot be empty")
)

// Card is a single matching-game card within a deck. The visual and
// audio fields are logical asset names, resolved in the Visuals and
// Sounds buckets respectively. A card has no identity outside its deck.
type Card struct {
	Anime  string `json:"anime"`
	Type   string `json:"type"`
	Visual string `json:"visual"`
	Audio  string `json:"audio"`
}

// Validate checks that the card references both of its assets.
func (c *Card) Validate() error {
	if c.Visual == "" {
		return ErrCardVisualEmpty
	}
	if c.Audio == "" {
		return ErrCardAudioEmpty
	}
	return nil
}

// Deck is one collection of cards, loaded from a single JSON file in
// the Decks directory. The name is the unique lookup key across the
// whole catalog. The category field references a Category by name but
// is informational only; the integrity scan reports dangling category
// references as warnings rather than errors.
type Deck struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Cover    string `json:"cover"`
	Cards    []Card `json:"cards"`
}

// Validate checks if the Deck has valid data.
// Returns an error if any field fails validation.
func (d *Deck) Validate() error {
	if d.Name == "" {
		return ErrDeckNameEmpty
	}
	if d.Cover == "" {
		return ErrDeckCoverEmpty
	}
	for i := range d.Cards {
		if err := d.Cards[i].Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}
