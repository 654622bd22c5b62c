package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but belongs to another user.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would duplicate a resource that may
// only exist once, such as a second packing list for the same itinerary.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when a request carries no usable identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateLimited marks a model-service failure caused by quota exhaustion or
// rate limiting. Handlers should map this to HTTP 429 with a "service busy"
// message.
var ErrRateLimited = errors.New("model service rate limited")

// ErrUpstream marks any other failure of the model service, including a
// request that exceeded the generation timeout.
var ErrUpstream = errors.New("model service unavailable")
