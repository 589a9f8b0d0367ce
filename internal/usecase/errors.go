package usecase

import "errors"

// Sentinel errors shared across services and the HTTP layer. Handlers map
// these onto status codes.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUpstreamFailure       = errors.New("upstream provider failure")
)
