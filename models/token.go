package models

import "time"

// Token is the persisted record of one authenticated session.
//
// Only the SHA-256 digest of the bearer value is stored; the plaintext is
// handed to the client once at issue time and cannot be recovered later.
type Token struct {
	// TokenID is the database identifier of the token record.
	TokenID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Name is an optional label (e.g. device name).
	Name string `json:"name"`

	// TokenHash is the hex-encoded SHA-256 digest of the plaintext token.
	TokenHash string `json:"-"`

	// CreatedAt is the moment the token was issued.
	CreatedAt time.Time `json:"created_at"`

	// LastUsedAt is updated each time the token authenticates a request.
	// Nil until the first use.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "personal_access_tokens"
}
