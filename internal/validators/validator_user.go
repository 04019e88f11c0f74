package validators

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-user-registry/models"
)

const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldDepartment  = "department"
	FieldPosition    = "position"
	FieldHireDate    = "hireDate"
)

var userFields = []string{
	FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber,
	FieldDepartment, FieldPosition, FieldHireDate,
}

// UserRules returns the constraints of an employee record. now supplies
// the current time for the hire date rule.
func UserRules(now func() time.Time) []Rule {
	return []Rule{
		Required(FieldFirstName, "First name"),
		Length(FieldFirstName, "First name", 2, 50),
		Matches(FieldFirstName, personNamePattern, "First name can only contain letters, spaces, hyphens and apostrophes"),

		Required(FieldLastName, "Last name"),
		Length(FieldLastName, "Last name", 2, 50),
		Matches(FieldLastName, personNamePattern, "Last name can only contain letters, spaces, hyphens and apostrophes"),

		Required(FieldEmail, "Email"),
		Length(FieldEmail, "Email", 0, 100),
		Email(FieldEmail, "Email"),

		Length(FieldPhoneNumber, "Phone number", 0, 20),
		Matches(FieldPhoneNumber, phonePattern, "Phone number can only contain digits, spaces and + ( ) - ."),

		Required(FieldDepartment, "Department"),
		Length(FieldDepartment, "Department", 2, 50),
		Matches(FieldDepartment, orgNamePattern, "Department can only contain letters, spaces, hyphens, apostrophes and ampersands"),

		Required(FieldPosition, "Position"),
		Length(FieldPosition, "Position", 2, 100),
		Matches(FieldPosition, orgNamePattern, "Position can only contain letters, spaces, hyphens, apostrophes and ampersands"),

		Required(FieldHireDate, "Hire date"),
		CalendarDate(FieldHireDate, "Hire date"),
		NotInFuture(FieldHireDate, "Hire date", now),
	}
}

type UserValidator struct {
	rules []Rule
}

// NewUserValidator returns a Validator for [models.CreateUserRequest] and
// [models.UpdateUserRequest] that compares hire dates against the wall clock.
func NewUserValidator() Validator {
	return NewUserValidatorWithClock(time.Now)
}

// NewUserValidatorWithClock is [NewUserValidator] with an explicit clock.
func NewUserValidatorWithClock(now func() time.Time) Validator {
	return &UserValidator{rules: UserRules(now)}
}

// Validate checks a create or update request. Field names restrict the
// rules to the given fields; an update request is always checked as
// partial input.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validate(createValues(value), false, fields...)
	case *models.CreateUserRequest:
		return v.validate(createValues(*value), false, fields...)

	case models.UpdateUserRequest:
		return v.validate(updateValues(value), true, fields...)
	case *models.UpdateUserRequest:
		return v.validate(updateValues(*value), true, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validate(values map[string]*string, partial bool, fields ...string) error {
	rules := v.rules
	if len(fields) > 0 {
		for _, f := range fields {
			if !slices.Contains(userFields, f) {
				return ErrUnknownField
			}
		}
		rules = make([]Rule, 0, len(v.rules))
		for _, r := range v.rules {
			if slices.Contains(fields, r.Field) {
				rules = append(rules, r)
			}
		}
	}

	return newValidationError(Evaluate(rules, values, partial))
}

func createValues(r models.CreateUserRequest) map[string]*string {
	return map[string]*string{
		FieldFirstName:   &r.FirstName,
		FieldLastName:    &r.LastName,
		FieldEmail:       &r.Email,
		FieldPhoneNumber: &r.PhoneNumber,
		FieldDepartment:  &r.Department,
		FieldPosition:    &r.Position,
		FieldHireDate:    &r.HireDate,
	}
}

func updateValues(r models.UpdateUserRequest) map[string]*string {
	return map[string]*string{
		FieldFirstName:   r.FirstName,
		FieldLastName:    r.LastName,
		FieldEmail:       r.Email,
		FieldPhoneNumber: r.PhoneNumber,
		FieldDepartment:  r.Department,
		FieldPosition:    r.Position,
		FieldHireDate:    r.HireDate,
	}
}
