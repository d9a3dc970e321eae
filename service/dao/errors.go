package dao

import "errors"

// Sentinel errors returned by every store, test with errors.Is.
var (
	// ErrNotFound is returned when no record is stored under the key.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID is returned for a zero key; record IDs start at 1.
	ErrInvalidID = errors.New("dao: invalid id")

	ErrNilEntity = errors.New("dao: nil entity")
)
