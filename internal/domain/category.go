package domain

import (
	"errors"
	"fmt"
)

// Category-specific validation errors
var (
	// ErrCategoryNameEmpty is returned when a category has no name.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategoryIconEmpty is returned when a category has no icon asset name.
	ErrCategoryIconEmpty = errors.New("category icon cannot be empty")
)

// Category groups decks under a display name. The icon field is a
// logical asset name resolved in the Categories bucket.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Validate checks that the category has a name and an icon.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	if c.Icon == "" {
		return ErrCategoryIconEmpty
	}
	return nil
}

// CategoryIndex is the decoded form of the category index file
// (Categories.json): the full category list plus the flat list of type
// labels. The source format permits duplicate type labels; callers that
// need set semantics deduplicate while preserving first-appearance order.
type CategoryIndex struct {
	Categories []Category `json:"categories"`
	Types      []string   `json:"types"`
}

// Validate checks every category in the index.
func (idx *CategoryIndex) Validate() error {
	for i := range idx.Categories {
		if err := idx.Categories[i].Validate(); err != nil {
			return fmt.Errorf("category %d: %w", i, err)
		}
	}
	return nil
}
