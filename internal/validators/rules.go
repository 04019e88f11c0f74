// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-registry/models"
)

// Rule is a single declarative constraint on one named field.
type Rule struct {
	Field   string
	Message string
	Check   func(value string) bool

	// Presence marks the rule that makes Field mandatory. It is the only
	// rule that sees absent values, and it is skipped for partial input.
	Presence bool
}

// Evaluate runs rules against values, keyed by field name, and returns the
// messages of every failed rule. A nil entry or a missing key means the
// field is absent. Only the first failing rule of each field is reported.
//
// With partial set, absent fields are not checked at all. Present but empty
// values of optional fields (fields without a Presence rule) are accepted.
func Evaluate(rules []Rule, values map[string]*string, partial bool) []string {
	required := make(map[string]bool)
	for _, r := range rules {
		if r.Presence {
			required[r.Field] = true
		}
	}

	var messages []string
	failed := make(map[string]bool)
	for _, r := range rules {
		if failed[r.Field] {
			continue
		}

		v := values[r.Field]
		if v == nil {
			if r.Presence && !partial {
				messages = append(messages, r.Message)
				failed[r.Field] = true
			}
			continue
		}
		if *v == "" && !required[r.Field] {
			continue
		}

		if !r.Check(*v) {
			messages = append(messages, r.Message)
			failed[r.Field] = true
		}
	}

	return messages
}

var (
	personNamePattern = regexp.MustCompile(`^[\p{L}\s'-]+$`)
	orgNamePattern    = regexp.MustCompile(`^[\p{L}\s'&-]+$`)
	phonePattern      = regexp.MustCompile(`^[0-9\s+().-]+$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	datePattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Required builds the presence rule of field.
func Required(field, label string) Rule {
	return Rule{
		Field:    field,
		Message:  label + " is required",
		Check:    func(v string) bool { return strings.TrimSpace(v) != "" },
		Presence: true,
	}
}

// Length bounds the number of characters (not bytes) of field.
func Length(field, label string, minLen, maxLen int) Rule {
	msg := fmt.Sprintf("%s must be between %d and %d characters", label, minLen, maxLen)
	if minLen == 0 {
		msg = fmt.Sprintf("%s must not exceed %d characters", label, maxLen)
	}

	return Rule{
		Field:   field,
		Message: msg,
		Check: func(v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= minLen && n <= maxLen
		},
	}
}

// Matches requires field to match pattern.
func Matches(field string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Check:   pattern.MatchString,
	}
}

// Email requires field to be a plain local@domain.tld address that is also
// accepted by the RFC 5322 address parser without a display name.
func Email(field, label string) Rule {
	return Rule{
		Field:   field,
		Message: label + " must be a valid email address",
		Check: func(v string) bool {
			if !emailPattern.MatchString(v) {
				return false
			}
			addr, err := mail.ParseAddress(v)
			return err == nil && addr.Name == "" && addr.Address == v
		},
	}
}

// CalendarDate requires field to be a real YYYY-MM-DD date.
func CalendarDate(field, label string) Rule {
	return Rule{
		Field:   field,
		Message: label + " must be a valid date in YYYY-MM-DD format",
		Check: func(v string) bool {
			if !datePattern.MatchString(v) {
				return false
			}
			_, err := models.ParseDate(v)
			return err == nil
		},
	}
}

// NotInFuture rejects dates strictly after the current calendar date as
// reported by now. Only the date portion is compared. Unparsable values
// pass, leaving them to [CalendarDate].
func NotInFuture(field, label string, now func() time.Time) Rule {
	return Rule{
		Field:   field,
		Message: label + " cannot be in the future",
		Check: func(v string) bool {
			d, err := models.ParseDate(v)
			if err != nil {
				return true
			}
			return !d.After(models.NewDate(now()))
		},
	}
}
