package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferralCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := NewReferralCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	// 36^6 possible codes; 200 draws collapsing to a handful would indicate
	// a broken generator.
	assert.Greater(t, len(seen), 190)
}

func TestUserBeforeCreateAssignsReferralCode(t *testing.T) {
	u := User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Regexp(t, `^[A-Z0-9]{6}$`, u.ReferralCode)

	supplied := User{Username: "bob", Email: "bob@example.com", ReferralCode: "ABC123"}
	require.NoError(t, supplied.BeforeCreate(nil))
	assert.Equal(t, "ABC123", supplied.ReferralCode)
}
