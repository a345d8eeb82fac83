package services

import "errors"

var (
	// ErrNotFound means the statement's key matched no row.
	ErrNotFound = errors.New("not found")

	// ErrNoFields means a partial update was requested with no updatable
	// field supplied. Returned before the store is touched.
	ErrNoFields = errors.New("no updatable fields supplied")
)
