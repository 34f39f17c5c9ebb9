package models

import "time"

// DefaultAvatarURL is assigned to newly created accounts that did not
// upload a picture yet.
const DefaultAvatarURL = "https://cdn.estate-hub.io/static/avatar-placeholder.png"

// User represents an account entity used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, generated at
	// creation time and immutable afterwards.
	ID string `json:"id"`

	// Username is the unique public handle of the user.
	// Must be at least 3 characters long.
	Username string `json:"username"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// excluded from every outbound representation of the record.
	PasswordHash string `json:"-"`

	// Avatar is the URL of the user's profile picture.
	// Defaults to DefaultAvatarURL when the user never uploaded one.
	Avatar string `json:"avatar"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user record. Pointer fields
// distinguish "field absent" from "field set to a value": nil fields are
// left untouched by the update.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil && u.Avatar == nil
}
