// Package http implements the REST transport of the user registry.
//
// It wires chi routes to the service layer and wraps them in the request
// pipeline: trace id, error handling, token authentication and
// request/response logging, outermost first.
//
// Authentication is a placeholder scheme. A token such as "admin_alice_01"
// yields the ADMIN role for subject "alice"; nothing is signed or expired.
package http
