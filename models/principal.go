// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is a label derived from the prefix of an API token.
// It carries no cryptographic backing.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleUser     Role = "USER"
	RoleReadOnly Role = "READONLY"
)

// Principal is the caller identity attached to an authenticated request.
type Principal struct {
	// Subject is the second underscore-delimited segment of the token.
	Subject string `json:"subject"`
	Role    Role   `json:"role"`
}
