package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/estate-hub/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUsername targets the unique public handle of the account.
	FieldUsername = "username"

	// FieldEmail targets the unique address the account authenticates with.
	FieldEmail = "email"

	// FieldPassword targets the plaintext secret supplied at signup or
	// password change. Only its length is inspected here; hashing happens
	// at the service layer.
	FieldPassword = "password"

	// FieldAvatar targets the profile picture URL.
	FieldAvatar = "avatar"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// emailPattern accepts a basic local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

// UserValidator enforces the user-record field rules: username length,
// email shape, and password length.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the concrete input type.
//
// Supported inputs:
//   - models.User / *models.User: full-record validation (signup); all
//     listed fields must be present and well-formed.
//   - models.UserUpdate / *models.UserUpdate: partial validation; only the
//     supplied (non-nil) fields are checked, and an update carrying no
//     fields at all is rejected.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
			if len(user.Username) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldEmail:
			if user.Email == "" {
				return ErrEmptyEmail
			}
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmail
			}
		case FieldAvatar:
			// any string is accepted; the store applies the placeholder default
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(_ context.Context, update models.UserUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if update.Username != nil && len(*update.Username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if update.Email != nil && !emailPattern.MatchString(*update.Email) {
		return ErrInvalidEmail
	}
	if update.Password != nil && len(*update.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// ValidatePassword checks the plaintext password length rule. It is split
// from Validate because models.User never carries the plaintext secret.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
