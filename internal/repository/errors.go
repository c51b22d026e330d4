package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist (or, for
	// sessions, has expired).
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user insert violates the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrConstraint is returned when a write violates a schema-level
	// constraint (missing required field, value outside an enum set).
	ErrConstraint = errors.New("constraint violation")
)
