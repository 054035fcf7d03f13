package api

import (
	"errors"
	"net/http"

	"github.com/ryotaki/karuta-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or filesystem structure to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors: unknown record names, missing asset files, and
	// rejected path-traversal attempts all collapse into 404.
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// An existing asset that cannot be read is a server fault, never a
	// client-facing absence.
	case errors.Is(err, store.ErrUnreadable):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case store.IsNotFoundError(err):
		return "Not found"

	default:
		return "An unexpected error occurred"
	}
}
