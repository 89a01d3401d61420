package engine

import "errors"

var (
	// ErrInvalidRange indicates a row or range outside the timeline,
	// or an empty range (start >= end).
	ErrInvalidRange = errors.New("invalid range")

	// ErrNotFound indicates a referenced employee or task does not exist.
	ErrNotFound = errors.New("not found")
)
