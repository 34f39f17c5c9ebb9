// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/estate-hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key under which the session middleware stores the
// authenticated user record (minus the password hash) in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionUserCtxKey, user)
var SessionUserCtxKey = contextKey("sessionUser")

// GetSessionUserFromContext retrieves the authenticated user record from the
// context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetSessionUserFromContext(ctx)
//	if !ok {
//	    // handle missing session user
//	}
func GetSessionUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.User)
	return user, ok
}
