package models

import "strings"

// CreateUserRequest is the body of POST /api/users.
// HireDate is kept as raw text so that a malformed date is reported together
// with every other field error instead of failing JSON decoding.
type CreateUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	HireDate    string `json:"hireDate"`
}

// UpdateUserRequest is the body of PUT /api/users/{id}.
// Only non-nil fields will be updated (partial update support).
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Department  *string `json:"department,omitempty"`
	Position    *string `json:"position,omitempty"`
	HireDate    *string `json:"hireDate,omitempty"`
}

// Sanitize trims every field and lower-cases the email.
func (r CreateUserRequest) Sanitize() CreateUserRequest {
	return CreateUserRequest{
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       NormalizeEmail(r.Email),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Department:  strings.TrimSpace(r.Department),
		Position:    strings.TrimSpace(r.Position),
		HireDate:    strings.TrimSpace(r.HireDate),
	}
}

// ToUser converts an already validated request into a new [User].
// ID, Active and timestamps are left for the store to assign.
func (r CreateUserRequest) ToUser() (User, error) {
	hireDate, err := ParseDate(r.HireDate)
	if err != nil {
		return User{}, err
	}

	return User{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Department:  r.Department,
		Position:    r.Position,
		HireDate:    hireDate,
	}, nil
}

// Sanitize trims the present fields and lower-cases the email if present.
func (r UpdateUserRequest) Sanitize() UpdateUserRequest {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}

	out := UpdateUserRequest{
		FirstName:   trim(r.FirstName),
		LastName:    trim(r.LastName),
		PhoneNumber: trim(r.PhoneNumber),
		Department:  trim(r.Department),
		Position:    trim(r.Position),
		HireDate:    trim(r.HireDate),
	}
	if r.Email != nil {
		email := NormalizeEmail(*r.Email)
		out.Email = &email
	}

	return out
}

// ToPatch converts an already validated request into a [UserPatch].
func (r UpdateUserRequest) ToPatch() (UserPatch, error) {
	patch := UserPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Department:  r.Department,
		Position:    r.Position,
	}

	if r.HireDate != nil {
		hireDate, err := ParseDate(*r.HireDate)
		if err != nil {
			return UserPatch{}, err
		}
		patch.HireDate = &hireDate
	}

	return patch, nil
}

// NormalizeEmail is the canonical form used for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
