package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (e.g. a raw
// package whose title and slug are both empty).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
