package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/estate-hub/models"
)

const (
	createUser = `INSERT INTO users (user_id, username, email, password_hash, avatar)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, password_hash, avatar, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, avatar, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, avatar, created_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	userReturningColumns = "user_id, username, email, password_hash, avatar, created_at"
)

// buildUserUpdateQuery builds a partial UPDATE over the non-nil fields of
// update. The Password field maps to the password_hash column and is expected
// to carry the derived hash already. Returns ErrBuildingSQLQuery when no
// field is supplied.
func buildUserUpdateQuery(userID string, update models.UserUpdate) (string, []any, error) {
	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userReturningColumns).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
