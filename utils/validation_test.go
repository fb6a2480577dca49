package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	for _, username := range []string{"abc", "user_123", "JohnDoe", "a_b_c_d_e_f_g_h_i_j"} {
		ok, _ := ValidateUsername(username)
		assert.True(t, ok, "username %q should be valid", username)
	}
	for _, username := range []string{"", "ab", "user name", "user-name", "user@name", "thisusernameiswaytoolongtobeallowed"} {
		ok, msg := ValidateUsername(username)
		assert.False(t, ok, "username %q should be invalid", username)
		assert.NotEmpty(t, msg)
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"user@example.com", "first.last+tag@sub.domain.org"} {
		ok, _ := ValidateEmail(email)
		assert.True(t, ok, "email %q should be valid", email)
	}
	for _, email := range []string{"", "plain", "user@", "@example.com", "user@domain"} {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, "email %q should be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("secret1")
	assert.True(t, ok)

	ok, msg := ValidatePassword("short")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"John", "Mary Jane", "O'Brien", "Smith-Jones"} {
		ok, _ := ValidateName(name)
		assert.True(t, ok, "name %q should be valid", name)
	}
	ok, _ := ValidateName("")
	assert.False(t, ok)
	ok, _ = ValidateName("Name123")
	assert.False(t, ok)
}

func TestFieldValidationErrorsMessage(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "amount", Message: "too small"},
		{Field: "duration", Message: "not allowed"},
	}
	assert.Equal(t, "amount: too small; duration: not allowed", errs.Error())
}
