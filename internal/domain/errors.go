package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a catalog entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName is returned when two entities of the same kind
	// share a name that must be unique across the catalog.
	ErrDuplicateName = errors.New("duplicate name")
)
