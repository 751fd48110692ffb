package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport    = errors.New("transport error")
	ErrUnavailable  = errors.New("server unavailable")
	ErrDecode       = errors.New("unexpected response")
	ErrRejected     = errors.New("rejected by server")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrInFlight     = errors.New("operation already in progress")
)

// RejectedError is a success=false answer from the backend. Message is meant
// to be shown to the operator as is.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

func decodeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}
