package crypto

import "errors"

var (
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrUnknownAlgorithm = errors.New("unknown password hashing algorithm")
	ErrMalformedDigest  = errors.New("malformed password digest")
	ErrTokenGeneration  = errors.New("failed to generate token")
)
