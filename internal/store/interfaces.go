// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Package store owns the employee records.
//
// Two kinds of backend implement [UserStorage]:
//   - the in-memory store: an ordered slice and an id counter guarded by one
//     mutex held for the duration of each operation;
//   - the SQL store (PostgreSQL or SQLite): every operation runs in one
//     transaction, schema managed by goose migrations.
//
// Both backends perform the email uniqueness check and the write as a
// single atomic step, so two concurrent creates with the same email can
// never both succeed.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
)

// UserStorage is the record store contract. Lookups only see active
// records. Emails are compared case-insensitively.
type UserStorage interface {
	// List returns every active record in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the active record with the given id or [ErrNoUserWasFound].
	GetByID(ctx context.Context, id int64) (models.User, error)

	// GetByEmail returns the active record with the given email or [ErrNoUserWasFound].
	GetByEmail(ctx context.Context, email string) (models.User, error)

	// ListByDepartment returns active records whose department equals
	// department ignoring case.
	ListByDepartment(ctx context.Context, department string) ([]models.User, error)

	// Create assigns the next id, marks the record active and appends it.
	// It fails with [ErrEmailAlreadyExists] if the email is taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update applies patch to the active record with the given id and
	// stamps UpdatedAt with now, even for an empty patch.
	Update(ctx context.Context, id int64, patch models.UserPatch, now time.Time) (models.User, error)

	// SoftDelete deactivates the active record with the given id and
	// stamps UpdatedAt with now. It returns the deactivated record.
	SoftDelete(ctx context.Context, id int64, now time.Time) (models.User, error)

	// Count returns the number of active records.
	Count(ctx context.Context) (int, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
