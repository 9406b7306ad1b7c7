package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// TokenBytes is the amount of random bytes behind every plaintext token.
// Hex encoding doubles it, so plaintext tokens are 64 characters long.
const TokenBytes = 32

// GenerateToken returns a fresh random plaintext token together with the
// digest that is persisted in its place.
func GenerateToken() (plaintext, digest string, err error) {
	raw := make([]byte, TokenBytes)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}

	plaintext = hex.EncodeToString(raw)
	return plaintext, HashToken(plaintext), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a plaintext token.
// Any string is accepted, including empty and malformed values.
func HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
