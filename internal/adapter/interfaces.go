// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the user registry REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// RegistryAdapter is a typed client of the user registry API.
type RegistryAdapter interface {
	// SetToken stores the API token sent as "Authorization: Bearer" with
	// every user request.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ListByDepartment(ctx context.Context, department string) ([]models.User, error)

	// Create returns the stored record. Validation failures come back as
	// [ErrBadRequest] with every message in the error text.
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)

	// Delete soft-deletes the record and returns it as it is after the delete.
	Delete(ctx context.Context, id int64) (models.User, error)

	// Health fetches /health/detailed. A DOWN report is returned together
	// with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.DetailedHealthResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
