package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password.
	ErrInvalidCredentials = errors.New("credentials not match")

	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
