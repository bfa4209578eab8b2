package models

import "errors"

// Sentinel errors for request validation.
var (
	ErrMissingTitle    = errors.New("title is required")
	ErrInvalidStrategy = errors.New("strategy must be 'bfs' or 'dfs'")
	ErrNegativeDepth   = errors.New("depth must not be negative")
	ErrDepthTooLarge   = errors.New("depth exceeds maximum")
)

// ErrPageMissing indicates the link source no longer knows the page (e.g. it was deleted).
var ErrPageMissing = errors.New("page missing")

// IsValidationError reports whether err stems from an invalid request rather
// than from the search itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrInvalidStrategy) ||
		errors.Is(err, ErrNegativeDepth) ||
		errors.Is(err, ErrDepthTooLarge)
}
