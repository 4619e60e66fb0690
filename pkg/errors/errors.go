package errors

import "errors"

// ValidationError marks input that is malformed after normalization.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks an explicit id lookup that missed.
// Slug-based filtering never produces it; a missing slug is an empty result.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError marks a uniqueness violation. Registries absorb it by
// re-reading the winning row, so it should never reach a caller.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// UnauthorizedError marks an operation that requires an authenticated viewer.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// DatabaseError marks a backing-store timeout or connection failure.
// It is the only retryable error in the taxonomy.
type DatabaseError struct {
	Message string
}

func (e *DatabaseError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &UnauthorizedError{Message: msg}
}

func NewDatabaseError(msg string) error {
	return &DatabaseError{Message: msg}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFoundError(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

func IsDatabaseError(err error) bool {
	var e *DatabaseError
	return errors.As(err, &e)
}

// IsRetryable reports whether a single internal retry is allowed for the
// error. Only store failures qualify, and only idempotent reads may use it.
func IsRetryable(err error) bool {
	return IsDatabaseError(err)
}
