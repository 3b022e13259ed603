package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// entry does not exist for the current user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing city, end date before start date, unknown accommodation type).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOverlap is returned when a write would leave two stays covering the same
// calendar day. Calendar edits never produce it; manual creates and updates do.
// Handlers should map this to HTTP 409 Conflict.
var ErrOverlap = errors.New("overlapping stay")

// ErrUnauthenticated is returned by write operations attempted without a user.
// Reads without a user are not an error: they simply see no data.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrMalformed is returned when a bulk payload cannot be decoded at all.
// Nothing from such a payload is applied.
var ErrMalformed = errors.New("malformed payload")
