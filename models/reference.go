package models

import (
	"crypto/rand"
	"fmt"
)

const (
	transactionRefPrefix = "TXN"
	transactionRefLength = 11
	referralCodeLength   = 6
	refAlphabet          = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewTransactionReference returns a ledger reference: the TXN prefix followed
// by 11 uppercase alphanumeric characters.
func NewTransactionReference() (string, error) {
	buf := make([]byte, transactionRefLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate transaction reference: %v", err)
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return transactionRefPrefix + string(buf), nil
}

// NewReferralCode returns a 6-character uppercase alphanumeric referral code.
func NewReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate referral code: %v", err)
	}
	for i, b := range buf {
		buf[i] = refAlphabet[int(b)%len(refAlphabet)]
	}
	return string(buf), nil
}
