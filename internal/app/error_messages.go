// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user registry handlers and middleware.
//
// Msg* constants are the caller-facing texts of error responses. Keeping
// them in one place keeps the wording consistent throughout the API.
package app

const (
	// MsgValidationFailed is the message of a 400 response caused by field
	// validation. The individual rule violations are listed separately.
	MsgValidationFailed = "Request validation failed"

	// MsgInternalServerError replaces the text of every unexpected failure
	// so that internals never reach the caller.
	MsgInternalServerError = "An unexpected error occurred"
)

// Error categories used in the "error" field where the HTTP status text
// does not fit.
const (
	CategoryValidationFailed = "Validation Failed"
	CategoryConflict         = "Conflict"
)
