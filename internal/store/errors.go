package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity or asset does not
	// exist. This is the generic version of the entity-specific not
	// found errors (e.g., ErrDeckNotFound, ErrAssetNotFound).
	ErrNotFound = errors.New("not found")

	// ErrUnreadable is returned when an asset exists but cannot be read
	// (permissions, I/O fault). It is deliberately distinct from
	// ErrNotFound: callers surface it as a server fault rather than a
	// client-facing absence.
	ErrUnreadable = errors.New("asset unreadable")

	// Entity-specific "not found" errors

	// ErrDeckNotFound indicates that no deck with the requested name
	// exists in the catalog.
	ErrDeckNotFound = fmt.Errorf("%w: deck", ErrNotFound)

	// ErrCategoryNotFound indicates that no category with the requested
	// name exists in the catalog.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrAssetNotFound indicates that the requested asset does not exist
	// in its bucket. Rejected path-traversal attempts also report this
	// error so they are indistinguishable from a missing file.
	ErrAssetNotFound = fmt.Errorf("%w: asset", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
