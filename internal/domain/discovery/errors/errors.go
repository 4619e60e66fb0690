package errors

import (
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

var (
	// ErrUnauthenticated is returned when a personalized view is requested
	// without a viewer
	ErrUnauthenticated = pkgerrors.NewUnauthorizedError("authenticated viewer required")

	// ErrStreamNotFound is returned when an owner has no stream record
	ErrStreamNotFound = pkgerrors.NewNotFoundError("stream not found")

	// ErrInvalidStreamID is returned when a media-status event carries no
	// stream id
	ErrInvalidStreamID = pkgerrors.NewValidationError("invalid stream id")

	// ErrDatabaseOperation is returned when a store operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
