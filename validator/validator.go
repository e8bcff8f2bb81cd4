// SPDX-License-Identifier: GPL-3.0-only

package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrInvalidFormat is returned for input that does not sanitize to a valid
// phone number. It is user-correctable and has no side effects.
var ErrInvalidFormat = errors.New("invalid phone number format")

// e164Pattern is the permissive fallback used when strict validation is
// disabled: a plus, a non-zero leading digit, 2 to 15 digits total.
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

type Validator struct {
	// Strict runs full E.164 structural validation via libphonenumber.
	// When false only the fallback pattern is applied, mirroring the
	// offline client behaviour.
	Strict bool
}

func NewValidator() *Validator {
	return &Validator{Strict: true}
}

// Normalize converts arbitrary user input into a PhoneNumber. It is
// idempotent: feeding any of the returned representations back in yields the
// same PhoneNumber.
func (v *Validator) Normalize(input string) (PhoneNumber, error) {
	sanitized := sanitize(input)

	if len(sanitized) < 10 {
		return PhoneNumber{}, ErrInvalidFormat
	}

	if v.Strict {
		parsed, err := phonenumbers.Parse(sanitized, "")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return PhoneNumber{}, ErrInvalidFormat
		}
	} else if !e164Pattern.MatchString(sanitized) {
		return PhoneNumber{}, ErrInvalidFormat
	}

	digits := sanitized[1:]
	local := localFormat(digits)

	return PhoneNumber{
		Raw:           sanitized,
		Local:         local,
		International: internationalFormat(digits, local),
		E164:          sanitized,
	}, nil
}

// sanitize strips everything but digits, then rewrites the number into
// international form: a leading 0 becomes +62, a bare 62 gains the plus, and
// anything else is assumed already international.
func sanitize(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, "0"):
		return "+62" + digits[1:]
	default:
		return "+" + digits
	}
}

// localFormat rewrites the digit string into local form with a leading zero.
// Non-Indonesian numbers keep their digits unchanged.
func localFormat(digits string) string {
	if strings.HasPrefix(digits, "62") {
		return "0" + digits[2:]
	}
	return digits
}

// internationalFormat groups the subscriber digits in blocks of four,
// matching the display format of the original front end.
func internationalFormat(digits, local string) string {
	if !strings.HasPrefix(digits, "62") {
		return "+" + digits
	}
	return "+62 " + groupDigits(local[1:])
}

func groupDigits(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
