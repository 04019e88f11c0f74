// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Package validators provides input validation for the employee registry.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Rule: a declarative {field, check, message} descriptor. Rules are plain
//     values collected in a list and evaluated by [Evaluate]; there is no
//     struct-tag reflection.
//   - ValidationError: the all-or-nothing outcome holding every message
//     produced by the failing rules.
//
// Usage patterns:
//  1. Describe the constraints of an input as a []Rule.
//  2. Inject a Validator built on those rules into services.
//  3. Call Validate with context, value, and optional field names to enforce rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
