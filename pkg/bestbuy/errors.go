package bestbuy

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a request is built without an API key
// configured. It is always raised before any network I/O.
var ErrMissingAPIKey = errors.New("bestbuy: no API key configured")

// ErrInvalidArgument is returned when a caller-supplied parameter combination
// is rejected at the endpoint layer, before any network I/O. Wrapped errors
// carry the offending detail; match with errors.Is.
var ErrInvalidArgument = errors.New("bestbuy: invalid argument")

// ServiceError reports a transport-level failure: connection or DNS errors,
// or a non-2xx status from the API. The diagnostic body is retained for
// logging but the rendered message stays short.
type ServiceError struct {
	URL        string
	StatusCode int    // zero when the request never completed
	Body       string // response payload, empty on connection failures
	Err        error  // underlying transport error, nil on HTTP status failures
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bestbuy: request failed: %v", e.Err)
	}
	return fmt.Sprintf("bestbuy: service returned status %d", e.StatusCode)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
