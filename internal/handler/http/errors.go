// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// ErrMissingToken is returned by the auth middleware when neither the
	// "Authorization" header, the "X-API-Key" header nor the "token" query
	// parameter carries a token.
	ErrMissingToken = errors.New("authentication token is required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidID is returned for an {id} path parameter that is not a
	// positive integer.
	ErrInvalidID = errors.New("user id must be a positive integer")

	// ErrBlankPathParam is returned for a path segment that is empty after
	// trimming.
	ErrBlankPathParam = errors.New("path parameter must not be blank")

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid JSON was passed")

	// ErrRouteNotFound and ErrMethodNotAllowed back the router fallbacks.
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
