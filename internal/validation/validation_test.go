package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantRule string
	}{
		{name: "valid", password: "TeSt12345"},
		{name: "valid with punctuation", password: "Chang3 m3 pleas3!"},
		{name: "valid minimum length", password: "C0nt3nta"},
		{name: "no uppercase", password: "test12345", wantRule: RuleUppercase},
		{name: "no digit", password: "TESTPASS", wantRule: RuleDigit},
		{name: "no lowercase", password: "TEST12345", wantRule: RuleLowercase},
		{name: "too short", password: "Te1", wantRule: RuleMinLength},
		{name: "empty", password: "", wantRule: RuleMinLength},
		{name: "non ascii", password: "TeSt12345é", wantRule: RuleASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, FieldPassword, vErr.Field)
			assert.Equal(t, tt.wantRule, vErr.Rule)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantRule string
	}{
		{name: "valid", username: "superman"},
		{name: "valid with digits", username: "vito2018"},
		{name: "too short", username: "vito", wantRule: RuleMinLength},
		{name: "underscore", username: "john_doe", wantRule: RuleAlphanumeric},
		{name: "space", username: "clark kent", wantRule: RuleAlphanumeric},
		{name: "empty", username: "", wantRule: RuleMinLength},
		{name: "accented letters", username: "ñandú1", wantRule: RuleAlphanumeric},
		{name: "greek letter", username: "Ωmega12", wantRule: RuleAlphanumeric},
		{name: "arabic-indic digits", username: "user١٢٣", wantRule: RuleAlphanumeric},
		{name: "max length", username: strings.Repeat("a", MaxUsernameLength)},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLength+1), wantRule: RuleMaxLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, FieldUsername, vErr.Field)
			assert.Equal(t, tt.wantRule, vErr.Rule)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"vitolibrarius@gmail.com",
		"clark.kent@gmail.com",
		"a+tag@sub.example.org",
		"first.middle.last@example.co.uk",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"none",
		"@example.com",
		"user@",
		"user@-example.com",
		" user@example.com",
		"user name@example.com",
		"user@localhost",
		".user@example.com",
		"a..b@example.com",
		"user.@example.com",
		"user@example..com",
	}
	for _, email := range invalid {
		err := ValidateEmail(email)
		var vErr *ValidationError
		if assert.True(t, errors.As(err, &vErr), email) {
			assert.Equal(t, FieldEmail, vErr.Field)
			assert.Equal(t, RuleEmail, vErr.Rule)
		}
	}
}

func TestValidateEmail_TooLong(t *testing.T) {
	email := strings.Repeat("a", MaxEmailLength) + "@example.com"

	var vErr *ValidationError
	require.True(t, errors.As(ValidateEmail(email), &vErr))
	assert.Equal(t, FieldEmail, vErr.Field)
	assert.Equal(t, RuleMaxLength, vErr.Rule)

	assert.NoError(t, ValidateEmail(strings.Repeat("a", MaxEmailLength-len("@example.com"))+"@example.com"))
}

func TestValidateUserFields(t *testing.T) {
	assert.NoError(t, ValidateUserFields("superman", "clark.kent@gmail.com"))
	assert.ErrorIs(t, ValidateUserFields("vito", "vitolibrarius@gmail.com"), ErrValidation)
	assert.ErrorIs(t, ValidateUserFields("someone", "none@"), ErrValidation)
	assert.ErrorIs(t, ValidateUserFields(strings.Repeat("x", 60), "clark.kent@gmail.com"), ErrValidation)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: FieldPassword, Rule: RuleDigit}
	assert.Equal(t, "password must contain a decimal digit", err.Error())
}
