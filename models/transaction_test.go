package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^TXN[A-Z0-9]{11}$`)

func TestNewTransactionReferenceShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref, err := NewTransactionReference()
		require.NoError(t, err)
		assert.Regexp(t, referencePattern, ref)
	}
}

func TestNewTransactionReferenceUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref, err := NewTransactionReference()
		require.NoError(t, err)
		assert.False(t, seen[ref], "reference %s generated twice", ref)
		seen[ref] = true
	}
}

func TestBeforeCreateAssignsReferenceOnce(t *testing.T) {
	txn := Transaction{}
	require.NoError(t, txn.BeforeCreate(nil))
	assert.Regexp(t, referencePattern, txn.Reference)

	supplied := Transaction{Reference: "TXNCALLERSUPPLD"}
	require.NoError(t, supplied.BeforeCreate(nil))
	assert.Equal(t, "TXNCALLERSUPPLD", supplied.Reference)
}

func TestValidTransactionType(t *testing.T) {
	for _, typ := range []string{
		TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeInterest,
		TransactionTypeReferralBonus, TransactionTypeInvestment,
	} {
		assert.True(t, ValidTransactionType(typ), "type %s should be valid", typ)
	}
	assert.False(t, ValidTransactionType("refund"))
	assert.False(t, ValidTransactionType(""))
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{
		PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodCrypto, PaymentMethodSystem,
	} {
		assert.True(t, ValidPaymentMethod(m), "method %s should be valid", m)
	}
	assert.False(t, ValidPaymentMethod("paypal"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestEarnsTowardTotal(t *testing.T) {
	assert.True(t, EarnsTowardTotal(TransactionTypeInterest))
	assert.True(t, EarnsTowardTotal(TransactionTypeReferralBonus))
	assert.False(t, EarnsTowardTotal(TransactionTypeDeposit))
	assert.False(t, EarnsTowardTotal(TransactionTypeWithdrawal))
	assert.False(t, EarnsTowardTotal(TransactionTypeInvestment))
}

func TestTransactionMetadataRoundTrip(t *testing.T) {
	meta := TransactionMetadata{"razorpay_order_id": "order_123", "source": "api"}

	value, err := meta.Value()
	require.NoError(t, err)

	var decoded TransactionMetadata
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, meta, decoded)

	var empty TransactionMetadata
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)
}
