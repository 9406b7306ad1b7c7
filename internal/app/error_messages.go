// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// auth API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place keeps the wording of the
// API consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidGivenData heads the 422 body that lists per-field
	// validation messages.
	MsgInvalidGivenData = "The given data was invalid."

	// MsgCredentialsNotMatch is returned by login for both an unknown email
	// and a wrong password.
	MsgCredentialsNotMatch = "Credentials not match"

	// MsgUnauthenticated is returned when a protected route is called
	// without a valid bearer token.
	MsgUnauthenticated = "Unauthenticated."

	// MsgUserRegistered is the message of a successful registration.
	MsgUserRegistered = "user registered"

	// MsgSuccess is the message of a successful login.
	MsgSuccess = "success"

	// MsgTokenRemoved is returned after logout revoked the caller's tokens.
	MsgTokenRemoved = "Token removed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
