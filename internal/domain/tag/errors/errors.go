package errors

import (
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

var (
	// ErrInvalidName is returned when a name is empty after slug derivation
	ErrInvalidName = pkgerrors.NewValidationError("tag name is empty after normalization")

	// ErrTagNotFound is returned when an explicit lookup misses
	ErrTagNotFound = pkgerrors.NewNotFoundError("tag not found")

	// ErrTagAlreadyExists is returned when the slug uniqueness constraint
	// rejects an insert; the registry absorbs it by re-reading
	ErrTagAlreadyExists = pkgerrors.NewConflictError("tag already exists")

	// ErrDatabaseOperation is returned when a store operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
