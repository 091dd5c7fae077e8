package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced by the clients. Match with errors.Is against the
// *APIError returned from any call.
var (
	ErrUnreachable    = errors.New("connection unreachable")
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrServer         = errors.New("server error")
)

// APIError is the single failure shape for every call made through this
// package. Status is 0 when the request never reached the network layer,
// otherwise it carries the HTTP status of the finished response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap maps the status onto the kind sentinels so callers can classify
// failures without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 0:
		return ErrUnreachable
	case e.Status == http.StatusUnauthorized:
		return ErrSessionExpired
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}
