package store

import "errors"

var (
	// ErrNotFound indicates the requested project or supervisor does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrSchemaMismatch indicates the database schema version does not
	// match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)
