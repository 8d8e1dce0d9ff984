package domain

import "errors"

// ErrNotFound is returned by catalog and planner functions when the requested
// resource (typically a city) does not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by planner functions when input fails business
// rule validation (e.g. unknown style token, empty anime selection).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
