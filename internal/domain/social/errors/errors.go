package errors

import (
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

var (
	// ErrUnauthenticated is returned when a social write has no viewer
	ErrUnauthenticated = pkgerrors.NewUnauthorizedError("authenticated viewer required")

	// ErrSelfRelation is returned on an attempt to follow or block oneself
	ErrSelfRelation = pkgerrors.NewValidationError("cannot target yourself")

	// ErrUserNotFound is returned when the target user does not exist
	ErrUserNotFound = pkgerrors.NewNotFoundError("user not found")

	// ErrFollowNotFound is returned when removing a follow that does not exist
	ErrFollowNotFound = pkgerrors.NewNotFoundError("follow not found")

	// ErrBlockNotFound is returned when removing a block that does not exist
	ErrBlockNotFound = pkgerrors.NewNotFoundError("block not found")

	// ErrAlreadyFollowing marks a duplicate follow insert. Absorbed by the
	// use case, never surfaced.
	ErrAlreadyFollowing = pkgerrors.NewConflictError("already following")

	// ErrAlreadyBlocked marks a duplicate block insert. Absorbed by the
	// use case, never surfaced.
	ErrAlreadyBlocked = pkgerrors.NewConflictError("already blocked")

	// ErrDatabaseOperation is returned when a store operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
