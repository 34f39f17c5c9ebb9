package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/estate-hub/models"
)

func strPtr(s string) *string { return &s }

func TestBuildUserUpdateQuery_AllFields(t *testing.T) {
	update := models.UserUpdate{
		Username: strPtr("alice2"),
		Email:    strPtr("a2@x.com"),
		Password: strPtr("$2a$10$newhash"),
		Avatar:   strPtr("https://cdn.estate-hub.io/u/alice2.png"),
	}

	query, args, err := buildUserUpdateQuery("user-1", update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET username = $1, email = $2, password_hash = $3, avatar = $4 WHERE user_id = $5 RETURNING user_id, username, email, password_hash, avatar, created_at"
	if query != want {
		t.Errorf("query mismatch:\n got: %s\nwant: %s", query, want)
	}

	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[0] != "alice2" || args[4] != "user-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUserUpdateQuery_SingleField(t *testing.T) {
	query, args, err := buildUserUpdateQuery("user-1", models.UserUpdate{Avatar: strPtr("https://img.example/a.png")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET avatar = $1 WHERE user_id = $2 RETURNING user_id, username, email, password_hash, avatar, created_at"
	if query != want {
		t.Errorf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestBuildUserUpdateQuery_EmptyStringIsAValue(t *testing.T) {
	// explicit empty string is a supplied value, distinct from an absent field
	query, args, err := buildUserUpdateQuery("user-1", models.UserUpdate{Avatar: strPtr("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if args[0] != "" {
		t.Errorf("expected empty string arg, got %v", args[0])
	}
	if query == "" {
		t.Error("expected non-empty query")
	}
}

func TestBuildUserUpdateQuery_NoFields(t *testing.T) {
	_, _, err := buildUserUpdateQuery("user-1", models.UserUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got: %v", err)
	}
}
