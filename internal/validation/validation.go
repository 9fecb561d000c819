// Package validation enforces the credential and field-format rules applied
// before any user row is written.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Policy limits
const (
	MinPasswordLength = 8
	MinUsernameLength = 5
	MaxUsernameLength = 50  // users.username VARCHAR(50)
	MaxEmailLength    = 255 // users.email VARCHAR(255)
)

// Rules reported by ValidationError
const (
	RuleASCII        = "must contain only ASCII characters"
	RuleMinLength    = "is too short"
	RuleMaxLength    = "is too long"
	RuleDigit        = "must contain a decimal digit"
	RuleLowercase    = "must contain a lowercase letter"
	RuleUppercase    = "must contain an uppercase letter"
	RuleAlphanumeric = "must contain only letters and digits"
	RuleEmail        = "is not a valid email address"
)

// Validated fields
const (
	FieldPassword = "password"
	FieldUsername = "username"
	FieldEmail    = "email"
)

// ErrValidation matches every *ValidationError with errors.Is.
var ErrValidation = errors.New("validation failed")

// Local part is a dot-atom; the domain needs at least two labels.
const (
	emailAtom  = "[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+"
	emailLabel = "[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?"
	emailRegex = "^" + emailAtom + "(?:\\." + emailAtom + ")*@" + emailLabel + "(?:\\." + emailLabel + ")+$"
)

var validEmail = regexp.MustCompile(emailRegex)

// ValidationError names the field and the rule it failed.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Rule)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func fail(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

// ValidatePassword checks the password strength policy. Rules are checked in
// order: ASCII, length, digit, lowercase, uppercase; the first failing rule is reported.
func ValidatePassword(password string) error {
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		if r > unicode.MaxASCII {
			return fail(FieldPassword, RuleASCII)
		}
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}

	switch {
	case len(password) < MinPasswordLength:
		return fail(FieldPassword, RuleMinLength)
	case !hasDigit:
		return fail(FieldPassword, RuleDigit)
	case !hasLower:
		return fail(FieldPassword, RuleLowercase)
	case !hasUpper:
		return fail(FieldPassword, RuleUppercase)
	}
	return nil
}

// ValidateUsername checks that the username is ASCII alphanumeric and fits
// the column.
func ValidateUsername(username string) error {
	for _, r := range username {
		if !isASCIIAlnum(r) {
			return fail(FieldUsername, RuleAlphanumeric)
		}
	}
	switch {
	case len(username) < MinUsernameLength:
		return fail(FieldUsername, RuleMinLength)
	case len(username) > MaxUsernameLength:
		return fail(FieldUsername, RuleMaxLength)
	}
	return nil
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// ValidateEmail checks the email address grammar.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) != email || !validEmail.MatchString(email) {
		return fail(FieldEmail, RuleEmail)
	}
	if len(email) > MaxEmailLength {
		return fail(FieldEmail, RuleMaxLength)
	}
	return nil
}

// ValidateUserFields runs the username and email rules applied on every
// user create and update.
func ValidateUserFields(username, email string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	return ValidateEmail(email)
}
