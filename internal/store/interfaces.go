package store

import (
	"context"

	"github.com/MKhiriev/estate-hub/models"
)

// UserRepository is the persistence contract for user records.
//
// Uniqueness of username and email is enforced at the store level: racing
// writers are arbitrated by the database constraint and the loser receives
// a [ConflictError], never a corrupted record.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies the non-nil fields of update to the user with the
	// given ID and returns the updated record. The Password field of update,
	// when set, must already contain the derived hash, never plaintext.
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user with the given ID. The delete is hard and
	// irreversible; ErrUserNotFound is returned when no row was affected.
	DeleteUser(ctx context.Context, userID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
