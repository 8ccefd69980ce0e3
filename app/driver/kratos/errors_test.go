package kratos

import (
	"errors"
	"net/http"
	"testing"

	"store-service/app/domain"
	"store-service/app/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *ClientAdapter {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return &ClientAdapter{logger: testLogger}
}

func TestClientAdapter_ClassifyErrorMessage(t *testing.T) {
	adapter := newTestAdapter(t)

	tests := []struct {
		name    string
		message string
		wantErr error
	}{
		{
			name:    "already registered",
			message: "An account with this email already exists.",
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name:    "user already registered",
			message: "User already registered",
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name:    "duplicate identity",
			message: "duplicate identity detected",
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name:    "rate limited",
			message: "Rate limit exceeded, slow down",
			wantErr: domain.ErrRateLimitExceeded,
		},
		{
			name:    "too many requests",
			message: "Too many requests have been made",
			wantErr: domain.ErrRateLimitExceeded,
		},
		{
			name:    "invalid credentials",
			message: "Invalid credentials supplied",
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "forbidden",
			message: "Access forbidden for this identity",
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name:    "password policy",
			message: "The password does not satisfy the password policy",
			wantErr: domain.ErrValidationFailed,
		},
		{
			name:    "unrecognized message",
			message: "something completely different happened",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapter.classifyErrorMessage(tt.message, "identity_create")

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClientAdapter_ParseHTTPStatusError(t *testing.T) {
	adapter := newTestAdapter(t)
	cause := errors.New("upstream failure")

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"conflict maps to already registered", http.StatusConflict, domain.ErrAlreadyRegistered},
		{"too many requests maps to rate limited", http.StatusTooManyRequests, domain.ErrRateLimitExceeded},
		{"forbidden maps to permission denied", http.StatusForbidden, domain.ErrPermissionDenied},
		{"unauthorized maps to invalid credentials", http.StatusUnauthorized, domain.ErrInvalidCredentials},
		{"bad request maps to validation failure", http.StatusBadRequest, domain.ErrValidationFailed},
		{"unprocessable entity maps to validation failure", http.StatusUnprocessableEntity, domain.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapter.parseHTTPStatusError(tt.statusCode, "identity_create", cause)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAdapter_ParseHTTPStatusError_Unclassified(t *testing.T) {
	adapter := newTestAdapter(t)
	cause := errors.New("upstream failure")

	err := adapter.parseHTTPStatusError(http.StatusBadGateway, "identity_create", cause)

	// the original error stays in the chain for logging
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "502")
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, 0, getHTTPStatus(nil))
	assert.Equal(t, http.StatusConflict, getHTTPStatus(&http.Response{StatusCode: http.StatusConflict}))
}
