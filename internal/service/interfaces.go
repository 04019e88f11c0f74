// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

// Package service holds the business logic of the user registry.
//
// Expected outcomes are returned as errors the HTTP layer maps to status
// codes: [ErrUserNotFound], store.ErrEmailAlreadyExists and
// *validators.ValidationError. Anything else is unexpected.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UserService manages employee records. Every method is safe for
// concurrent use.
type UserService interface {
	// ListActive returns every active record in insertion order.
	ListActive(ctx context.Context) ([]models.User, error)

	GetByID(ctx context.Context, id int64) (models.User, error)

	// GetByEmail matches case-insensitively. A blank email is not found.
	GetByEmail(ctx context.Context, email string) (models.User, error)

	// GetByDepartment matches case-insensitively. A blank department
	// yields an empty result.
	GetByDepartment(ctx context.Context, department string) ([]models.User, error)

	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// Update overwrites the present fields and always stamps UpdatedAt.
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)

	// SoftDelete deactivates the record and returns it.
	SoftDelete(ctx context.Context, id int64) (models.User, error)
}

// AuthService turns a raw API token into the caller identity.
//
// The scheme is a placeholder: the role comes from the token prefix and
// nothing is signed, expired or revoked. It is not a security boundary.
type AuthService interface {
	ParseToken(ctx context.Context, token string) (models.Principal, error)
}

// AppInfoService reports version and health information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
	Health(ctx context.Context) models.HealthResponse
	DetailedHealth(ctx context.Context) models.DetailedHealthResponse
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
