package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures: the backend could not be
	// reached or the request did not complete.
	ErrUnavailable = errors.New("server unavailable")

	// ErrRejected marks an explicit refusal by the backend. Match it with
	// errors.Is; the concrete value is a *BackendError.
	ErrRejected = errors.New("upload rejected")

	// ErrMalformedResponse is returned when a success status arrives with a
	// body that carries no usable remote id.
	ErrMalformedResponse = errors.New("malformed response")
)

// BackendError is an application-level rejection carrying the backend's own
// reason text.
type BackendError struct {
	StatusCode int
	Reason     string
}

func (e *BackendError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return e.Reason
}

func (e *BackendError) Unwrap() error { return ErrRejected }
