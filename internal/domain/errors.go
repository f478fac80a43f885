package domain

import "errors"

// ErrNotFound is returned by upstream adapters and service functions when the
// requested resource does not exist on the reservations backend.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown view name, commit without an open editor).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned when the reservations backend answers with an
// unexpected status or cannot be reached at all.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrUpstream = errors.New("upstream error")
