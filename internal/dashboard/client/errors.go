package client

import (
	"errors"
	"fmt"

	"casedesk/pkg/platform/sentinel"
)

// Failure taxonomy of a fetch. Callers classify with errors.Is.
var (
	// ErrNotFound is a 404 from a case or explainability endpoint.
	ErrNotFound = sentinel.ErrNotFound
	// ErrTransport covers network failures and non-2xx statuses other than 404.
	ErrTransport = sentinel.ErrUnavailable
	// ErrMalformed is a body that does not decode or lacks the expected shape.
	ErrMalformed = sentinel.ErrMalformed
)

// StatusError is a non-2xx answer from the case API.
type StatusError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GET %s: status %d", e.Path, e.StatusCode)
}

// Is maps a 404 to ErrNotFound and every other status to ErrTransport.
func (e *StatusError) Is(target error) bool {
	if e.StatusCode == 404 {
		return target == ErrNotFound
	}
	return target == ErrTransport
}

// IsStatus reports whether err is an HTTP status answer rather than a network
// or decoding failure.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

func transportError(path string, err error) error {
	return fmt.Errorf("%w: GET %s: %w", ErrTransport, path, err)
}

func malformedError(path string, err error) error {
	return fmt.Errorf("%w: GET %s: %w", ErrMalformed, path, err)
}
