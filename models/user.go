// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an employee record managed by the registry.
//
// ID is assigned by the store on creation and never reused. A soft-deleted
// user keeps its ID and stays in storage with Active set to false; it is
// hidden from every list and lookup operation.
type User struct {
	// ID is the store-assigned positive identifier.
	ID int64 `json:"id"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	Position    string `json:"position"`

	// HireDate is a calendar date serialized as YYYY-MM-DD.
	HireDate Date `json:"hireDate"`

	// Active is false once the user has been soft-deleted.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is nil until the first successful update or soft delete.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch is a partial update of a [User]. Only non-nil fields are applied.
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Department  *string
	Position    *string
	HireDate    *Date
}

// IsEmpty reports whether the patch carries no field at all.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.Department == nil && p.Position == nil && p.HireDate == nil
}

// Apply overwrites the fields of u that are present in p.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Position != nil {
		u.Position = *p.Position
	}
	if p.HireDate != nil {
		u.HireDate = *p.HireDate
	}
}
