package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTypeChecks(t *testing.T) {
	if !IsValidationError(NewValidationError("bad name")) {
		t.Error("expected validation error")
	}
	if !IsNotFoundError(NewNotFoundError("missing")) {
		t.Error("expected not found error")
	}
	if !IsConflictError(NewConflictError("duplicate")) {
		t.Error("expected conflict error")
	}
	if !IsUnauthorizedError(NewUnauthorizedError("anonymous")) {
		t.Error("expected unauthorized error")
	}
	if !IsDatabaseError(NewDatabaseError("timeout")) {
		t.Error("expected database error")
	}
	if IsNotFoundError(NewValidationError("bad name")) {
		t.Error("validation error must not match not found")
	}
}

func TestTypeChecksThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("query failed: %w", NewDatabaseError("timeout"))
	if !IsDatabaseError(wrapped) {
		t.Error("expected database error through wrapping")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewDatabaseError("timeout")) {
		t.Error("store failures are retryable")
	}
	for _, err := range []error{
		NewValidationError("bad"),
		NewNotFoundError("missing"),
		NewConflictError("duplicate"),
		NewUnauthorizedError("anonymous"),
	} {
		if IsRetryable(err) {
			t.Errorf("%T must not be retryable", err)
		}
	}
}

func TestMapErrorToHTTP(t *testing.T) {
	m := NewMapper()

	cases := []struct {
		err  error
		code int
	}{
		{nil, http.StatusOK},
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewUnauthorizedError("anonymous"), http.StatusUnauthorized},
		{NewNotFoundError("missing"), http.StatusNotFound},
		{NewConflictError("duplicate"), http.StatusConflict},
		{NewDatabaseError("timeout"), http.StatusServiceUnavailable},
		{fmt.Errorf("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if code, _ := m.MapErrorToHTTP(tc.err); code != tc.code {
			t.Errorf("MapErrorToHTTP(%v) = %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestDatabaseErrorMessageIsNotLeaked(t *testing.T) {
	m := NewMapper()
	_, msg := m.MapErrorToHTTP(NewDatabaseError("dial tcp 10.0.0.5:5432: timeout"))
	if msg != "store unavailable" {
		t.Errorf("store error detail must not leak, got %q", msg)
	}
}
