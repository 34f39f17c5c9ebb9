package service

import "errors"

var (
	// ErrValidation wraps every input validation failure so that callers can
	// classify the whole family with a single errors.Is check. The wrapped
	// validator error carries the user-facing detail.
	ErrValidation = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the account exists but the
	// supplied password does not verify against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrForbidden is returned when the authenticated identity does not own
	// the resource it attempts to mutate.
	ErrForbidden = errors.New("authenticated user does not own the target resource")

	// ErrTokenIsExpired is returned by ParseToken for a structurally valid,
	// correctly signed token whose expiry has passed. Re-authentication is
	// the only path to a new token.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for any other verification
	// failure: bad signature, wrong issuer, malformed structure.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
