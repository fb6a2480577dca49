package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("record not found")
	appErr := NotFoundError("Investment not found", cause)

	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Contains(t, appErr.Error(), "Investment not found")
	assert.ErrorIs(t, appErr, cause)

	wrapped := fmt.Errorf("handling request: %w", appErr)
	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusNotFound, got.Code)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFoundError(NotFoundError("missing", nil)))
	assert.False(t, IsNotFoundError(ConflictError("duplicate", nil)))

	assert.True(t, IsConflictError(ConflictError("duplicate", nil)))
	assert.False(t, IsConflictError(errors.New("plain error")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(errors.New(`duplicate key value violates unique constraint "idx_transactions_reference"`)))
	assert.True(t, IsDuplicateKeyError(errors.New("ERROR: duplicate key (SQLSTATE 23505)")))
	assert.True(t, IsDuplicateKeyError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateKeyError(errors.New("connection refused")))
	assert.False(t, IsDuplicateKeyError(nil))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	cause := errors.New("boom")
	err := WrapError(cause, "creating referral")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "creating referral")
}
