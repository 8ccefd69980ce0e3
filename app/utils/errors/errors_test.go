package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := New(ErrCodeInvalidHandle, "handle format is invalid")
	assert.Equal(t, "INVALID_HANDLE: handle format is invalid", plain.Error())

	withCause := Wrap(ErrCodeDatabaseError, "insert failed", errors.New("connection reset"))
	assert.Contains(t, withCause.Error(), "DATABASE_ERROR")
	assert.Contains(t, withCause.Error(), "connection reset")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrCodeDatabaseError, "insert failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestAppError_With(t *testing.T) {
	err := New(ErrCodeHandleUnavailable, "handle is not available").
		WithDetails("the handle @my-shop is taken").
		WithContext("handle", "@my-shop")

	assert.Equal(t, "the handle @my-shop is taken", err.Details)
	assert.Equal(t, "@my-shop", err.Context["handle"])
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code       ErrorCode
		wantStatus int
	}{
		{ErrCodeHandleUnavailable, http.StatusConflict},
		{ErrCodeAlreadyRegistered, http.StatusConflict},
		{ErrCodeInvalidHandle, http.StatusBadRequest},
		{ErrCodeFlowNotFound, http.StatusNotFound},
		{ErrCodeFlowExpired, http.StatusGone},
		{ErrCodeStoreNotFound, http.StatusNotFound},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeKratosError, http.StatusServiceUnavailable},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_NEW"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.wantStatus, err.StatusCode)
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeFlowExpired, "signup flow has expired")
	wrapped := fmt.Errorf("handling request: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeFlowExpired, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeFlowNotFound, GetErrorCode(ErrFlowNotFound))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusGone, GetHTTPStatusCode(ErrFlowExpired))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrHandleUnavailable))
	assert.False(t, IsAppError(errors.New("plain")))
}
