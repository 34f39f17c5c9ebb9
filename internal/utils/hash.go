package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// plaintext twice produces different hashes that both verify against the
// original password.
//
// Parameters:
//
//	password - the plaintext secret to hash
//	cost     - bcrypt work factor; values below bcrypt.MinCost select
//	           bcrypt.DefaultCost
//
// Returns the encoded hash string or an error if hashing fails (e.g. the
// password exceeds bcrypt's 72-byte limit).
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time and leaks no timing
// information correlated with match position.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
