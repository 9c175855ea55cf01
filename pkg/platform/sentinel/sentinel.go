package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The fixture store and the
// dashboard client return these (optionally wrapped) so callers can translate
// them into domain errors or view states.
//
// - ErrNotFound: record does not exist
// - ErrUnavailable: source or server could not be reached
// - ErrMalformed: data was read but does not have the expected shape
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrMalformed   = errors.New("malformed")
)
