package models

// SignupRequest is the JSON body of the signup operation. Password is the
// plaintext secret; it is hashed at the service layer and never persisted
// or logged as-is.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest is the JSON body of the signin operation.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
