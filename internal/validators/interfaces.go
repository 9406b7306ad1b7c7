// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads at the boundary of the
// application and reports every rule violation per field.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the field -> messages map returned on failure. It
//     implements error and is rendered as the 422 response body.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// EmailChecker reports whether an email address is already registered.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}
