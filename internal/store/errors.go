package store

import "errors"

var (
	// ErrUnavailable means the database could not be reached or
	// authenticated against.
	ErrUnavailable = errors.New("database unavailable")

	// ErrNotFound means the requested entity does not exist. It is a
	// normal empty-result outcome, not a failure.
	ErrNotFound = errors.New("not found")
)
