package errors

import (
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

var (
	// ErrInvalidName is returned when a name is empty after slug derivation
	ErrInvalidName = pkgerrors.NewValidationError("category name is empty after normalization")

	// ErrCategoryNotFound is returned when an explicit id lookup misses
	ErrCategoryNotFound = pkgerrors.NewNotFoundError("category not found")

	// ErrCategoryAlreadyExists is returned when the slug uniqueness
	// constraint rejects an insert; the registry absorbs it by re-reading
	ErrCategoryAlreadyExists = pkgerrors.NewConflictError("category already exists")

	// ErrDatabaseOperation is returned when a store operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
