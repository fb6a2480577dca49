package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairedUserValidate(t *testing.T) {
	t.Run("rejects self pairing", func(t *testing.T) {
		p := PairedUser{User1ID: 7, User2ID: 7, PairingType: PairingTypeManual}
		assert.ErrorIs(t, p.Validate(), ErrSelfPairing)
	})

	t.Run("rejects unknown pairing type", func(t *testing.T) {
		p := PairedUser{User1ID: 1, User2ID: 2, PairingType: "friendship"}
		assert.Error(t, p.Validate())
	})

	t.Run("accepts distinct users with known type", func(t *testing.T) {
		p := PairedUser{User1ID: 1, User2ID: 2, PairingType: PairingTypeInvestment}
		assert.NoError(t, p.Validate())
	})
}

func TestPairedUserBeforeCreateStampsStartDate(t *testing.T) {
	p := PairedUser{User1ID: 1, User2ID: 2, PairingType: PairingTypeReferral}
	require.NoError(t, p.BeforeCreate(nil))
	assert.False(t, p.StartDate.IsZero())
}

func TestValidPairingType(t *testing.T) {
	for _, typ := range []string{PairingTypeInvestment, PairingTypeReferral, PairingTypeManual} {
		assert.True(t, ValidPairingType(typ))
	}
	assert.False(t, ValidPairingType(""))
	assert.False(t, ValidPairingType("random"))
}

func TestValidPairingStatus(t *testing.T) {
	for _, s := range []string{
		PairingStatusPending, PairingStatusActive, PairingStatusCompleted, PairingStatusCancelled,
	} {
		assert.True(t, ValidPairingStatus(s))
	}
	assert.False(t, ValidPairingStatus("archived"))
}
