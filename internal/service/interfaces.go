package service

import (
	"context"

	"github.com/MKhiriev/estate-hub/models"
)

// AuthService orchestrates account creation and credential verification and
// owns the session token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from the signup input. The returned
	// record carries server-assigned fields; no token is issued at signup.
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login verifies the credentials and returns the matching account.
	Login(ctx context.Context, request models.SigninRequest) (models.User, error)

	// CreateToken issues a signed, time-bound session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string. Expired tokens are reported as
	// ErrTokenIsExpired, every other failure as ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID looks up the account behind a verified token subject. A
	// token whose account no longer exists yields store.ErrUserNotFound.
	GetUserByID(ctx context.Context, userID string) (models.User, error)
}

// UserService performs mutations of existing user records, gated by the
// acting session identity.
type UserService interface {
	// UpdateUser applies a partial update to the target user on behalf of
	// actorID. Mutating an account other than one's own fails with
	// ErrForbidden before any store access.
	UpdateUser(ctx context.Context, actorID, targetID string, update models.UserUpdate) (models.User, error)

	// DeleteUser hard-deletes the target user on behalf of actorID, with the
	// same ownership gate as UpdateUser.
	DeleteUser(ctx context.Context, actorID, targetID string) error
}

// IDGenerator produces opaque unique identifiers for new records.
type IDGenerator interface {
	Generate() string
}
