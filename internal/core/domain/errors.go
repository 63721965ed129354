package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidQuery indicates an empty or unusable search query.
	// Rejected before the planner runs; never retried.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrStoreUnavailable indicates the content store could not be
	// reached. Surfaced to the caller as a transient failure and never
	// written to the result cache.
	ErrStoreUnavailable = errors.New("store unavailable")
)
