package store

import (
	"errors"
	"strings"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert or update collides with
	// the unique constraint on username or email. The concrete colliding
	// field(s) are carried by [ConflictError], which matches this sentinel
	// via errors.Is.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")
)

// ConflictError reports a uniqueness violation together with the user fields
// that collided, derived from the PostgreSQL constraint name. It matches
// [ErrUserAlreadyExists] via errors.Is so callers can branch on the class
// without losing the field detail.
type ConflictError struct {
	// Fields names the colliding user fields, e.g. ["email"].
	Fields []string
}

func (e *ConflictError) Error() string {
	return "unique constraint violation on: " + strings.Join(e.Fields, ", ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrUserAlreadyExists
}

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no fields to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
