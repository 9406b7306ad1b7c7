// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the auth API.
//
// [AuthAPI] hides the transport from callers such as the command-line
// client. The package ships an HTTP/REST implementation ([NewHTTPAuthAPI])
// built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and [errors.As] with [*ValidationError] for 422 field messages.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_api_mock.go -package=mock

// AuthAPI is the client view of the auth API endpoints.
type AuthAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterData, error)

	// Login exchanges credentials for a new token, which is stored via
	// SetToken and returned.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Me returns the user the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Logout revokes every token of the current user and clears the stored
	// one.
	Logout(ctx context.Context) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
