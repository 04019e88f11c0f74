// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// fixedNow is late in the evening so that date-only comparison is exercised.
var fixedNow = time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func ptr(s string) *string { return &s }

func validCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		FirstName:   "Sarah",
		LastName:    "Wilson",
		Email:       "sarah.wilson@techhive.com",
		PhoneNumber: "555-0106",
		Department:  "Finance",
		Position:    "Financial Analyst",
		HireDate:    "2024-02-01",
	}
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Messages
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidatorWithClock(clock)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("create value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateRequest()))
	})

	t.Run("create pointer", func(t *testing.T) {
		r := validCreateRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("update value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateUserRequest{}))
	})

	t.Run("update pointer", func(t *testing.T) {
		r := models.UpdateUserRequest{Position: ptr("Senior Analyst")}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validCreateRequest(), "salary"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreate
// ---------------------------------------------------------------------------

func TestValidateCreate(t *testing.T) {
	v := NewUserValidatorWithClock(clock)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.CreateUserRequest)
		wantMsg string
	}{
		{
			name:    "missing first name",
			mutate:  func(r *models.CreateUserRequest) { r.FirstName = "" },
			wantMsg: "First name is required",
		},
		{
			name:    "short last name",
			mutate:  func(r *models.CreateUserRequest) { r.LastName = "W" },
			wantMsg: "Last name must be between 2 and 50 characters",
		},
		{
			name:    "digits in first name",
			mutate:  func(r *models.CreateUserRequest) { r.FirstName = "Sarah2" },
			wantMsg: "First name can only contain letters, spaces, hyphens and apostrophes",
		},
		{
			name:    "email without tld",
			mutate:  func(r *models.CreateUserRequest) { r.Email = "sarah@techhive" },
			wantMsg: "Email must be a valid email address",
		},
		{
			name:    "email with display name",
			mutate:  func(r *models.CreateUserRequest) { r.Email = "Sarah <sarah@techhive.com>" },
			wantMsg: "Email must be a valid email address",
		},
		{
			name:    "email too long",
			mutate:  func(r *models.CreateUserRequest) { r.Email = strings.Repeat("a", 95) + "@x.com" },
			wantMsg: "Email must not exceed 100 characters",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *models.CreateUserRequest) { r.PhoneNumber = "call me" },
			wantMsg: "Phone number can only contain digits, spaces and + ( ) - .",
		},
		{
			name:    "phone too long",
			mutate:  func(r *models.CreateUserRequest) { r.PhoneNumber = strings.Repeat("1", 21) },
			wantMsg: "Phone number must not exceed 20 characters",
		},
		{
			name:    "department with digits",
			mutate:  func(r *models.CreateUserRequest) { r.Department = "R2D2" },
			wantMsg: "Department can only contain letters, spaces, hyphens, apostrophes and ampersands",
		},
		{
			name:    "position too long",
			mutate:  func(r *models.CreateUserRequest) { r.Position = strings.Repeat("a", 101) },
			wantMsg: "Position must be between 2 and 100 characters",
		},
		{
			name:    "malformed hire date",
			mutate:  func(r *models.CreateUserRequest) { r.HireDate = "01/02/2024" },
			wantMsg: "Hire date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "impossible hire date",
			mutate:  func(r *models.CreateUserRequest) { r.HireDate = "2024-02-30" },
			wantMsg: "Hire date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "hire date tomorrow",
			mutate:  func(r *models.CreateUserRequest) { r.HireDate = "2025-03-11" },
			wantMsg: "Hire date cannot be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateRequest()
			tt.mutate(&r)

			msgs := messagesOf(t, v.Validate(ctx, r))
			assert.Equal(t, []string{tt.wantMsg}, msgs)
		})
	}
}

func TestValidateCreate_AcceptedValues(t *testing.T) {
	v := NewUserValidatorWithClock(clock)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *models.CreateUserRequest)
	}{
		{name: "hire date today", mutate: func(r *models.CreateUserRequest) { r.HireDate = "2025-03-10" }},
		{name: "no phone", mutate: func(r *models.CreateUserRequest) { r.PhoneNumber = "" }},
		{name: "international phone", mutate: func(r *models.CreateUserRequest) { r.PhoneNumber = "+1 (555) 010.6" }},
		{name: "apostrophe and hyphen", mutate: func(r *models.CreateUserRequest) { r.LastName = "O'Neil-Smith" }},
		{name: "accented name", mutate: func(r *models.CreateUserRequest) { r.FirstName = "Zoë" }},
		{name: "ampersand department", mutate: func(r *models.CreateUserRequest) { r.Department = "Research & Development" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateRequest()
			tt.mutate(&r)
			assert.NoError(t, v.Validate(ctx, r))
		})
	}
}

func TestValidateCreate_CollectsAllMessages(t *testing.T) {
	v := NewUserValidatorWithClock(clock)

	msgs := messagesOf(t, v.Validate(context.Background(), models.CreateUserRequest{}))

	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email is required",
		"Department is required",
		"Position is required",
		"Hire date is required",
	}, msgs)
}

func TestValidateCreate_RestrictedFields(t *testing.T) {
	v := NewUserValidatorWithClock(clock)
	r := validCreateRequest()
	r.FirstName = ""
	r.HireDate = "2999-01-01"

	msgs := messagesOf(t, v.Validate(context.Background(), r, FieldHireDate))

	assert.Equal(t, []string{"Hire date cannot be in the future"}, msgs)
}

// ---------------------------------------------------------------------------
// TestValidateUpdate
// ---------------------------------------------------------------------------

func TestValidateUpdate(t *testing.T) {
	v := NewUserValidatorWithClock(clock)
	ctx := context.Background()

	t.Run("absent fields are not required", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Email: ptr("new@techhive.com")}))
	})

	t.Run("present fields are checked", func(t *testing.T) {
		msgs := messagesOf(t, v.Validate(ctx, models.UpdateUserRequest{
			FirstName: ptr("X"),
			HireDate:  ptr("2025-03-11"),
		}))
		assert.Equal(t, []string{
			"First name must be between 2 and 50 characters",
			"Hire date cannot be in the future",
		}, msgs)
	})

	t.Run("blank required field", func(t *testing.T) {
		msgs := messagesOf(t, v.Validate(ctx, models.UpdateUserRequest{Department: ptr("")}))
		assert.Equal(t, []string{"Department is required"}, msgs)
	})

	t.Run("blank phone clears it", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateUserRequest{PhoneNumber: ptr("")}))
	})
}

// ---------------------------------------------------------------------------
// TestEvaluate
// ---------------------------------------------------------------------------

func TestEvaluate_FirstFailurePerField(t *testing.T) {
	rules := []Rule{
		Required("name", "Name"),
		Length("name", "Name", 3, 5),
		{Field: "name", Message: "never reached", Check: func(string) bool { return false }},
	}

	msgs := Evaluate(rules, map[string]*string{"name": ptr("ab")}, false)

	assert.Equal(t, []string{"Name must be between 3 and 5 characters"}, msgs)
}

func TestEvaluate_LengthCountsCharacters(t *testing.T) {
	rules := []Rule{Length("name", "Name", 2, 3)}

	assert.Empty(t, Evaluate(rules, map[string]*string{"name": ptr("Łuk")}, false))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Messages: []string{"a", "b"}}
	assert.Equal(t, "validation failed: a; b", err.Error())
	assert.NoError(t, newValidationError(nil))
}
