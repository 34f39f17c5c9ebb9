package models

// Ack is the generic acknowledgment body returned by operations that do not
// produce a resource representation (signup, delete).
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform error body returned to clients. Internal
// error detail is logged server-side and never echoed here.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// ConflictFields names the unique fields that collided when the error
	// is a uniqueness conflict (e.g. ["email"], ["username","email"]).
	// Omitted for every other error class.
	ConflictFields []string `json:"conflict_fields,omitempty"`
}

// SigninResponse is the success body of the signin operation. The session
// token travels in the http-only cookie, not in the body; User never carries
// the password hash (see [User.PasswordHash]).
type SigninResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// UserResponse wraps a single user record (update operation).
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}
