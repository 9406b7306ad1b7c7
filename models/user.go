package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication.
// PasswordHash is a one-way digest and must never leave the server.
type User struct {
	// UserID is the unique, immutable identifier assigned by the database.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. It is stored normalized
	// (trimmed and lower-cased), so uniqueness is case-insensitive.
	Email string `json:"email"`

	// PasswordHash stores the salted digest of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
