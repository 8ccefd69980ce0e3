package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSignupFlow(t *testing.T) {
	flow := NewSignupFlow(30 * time.Minute)

	assert.Equal(t, StepCredentials, flow.Step)
	assert.False(t, flow.Expired())
	assert.False(t, flow.Terminal())
	assert.True(t, flow.ExpiresAt.After(flow.CreatedAt))
}

func TestSignupFlow_Expired(t *testing.T) {
	fresh := NewSignupFlow(30 * time.Minute)
	assert.False(t, fresh.Expired())

	stale := NewSignupFlow(-time.Minute)
	assert.True(t, stale.Expired())
}

func TestSignupFlow_Terminal(t *testing.T) {
	flow := NewSignupFlow(30 * time.Minute)

	for _, step := range []SignupStep{StepCredentials, StepStoreDetails, StepSubmitting, StepFailed} {
		flow.Step = step
		assert.False(t, flow.Terminal(), "step %s must not be terminal", step)
	}

	flow.Step = StepSucceeded
	assert.True(t, flow.Terminal())
}

func TestProvisionError(t *testing.T) {
	cause := ErrDuplicateHandle
	err := NewProvisionError(StageStoreCreate, CategoryDuplicateHandle, "This handle is already taken. Please choose another one.", cause)

	assert.ErrorIs(t, err, ErrDuplicateHandle)
	assert.True(t, err.Recoverable())
	assert.Equal(t, "handle", err.FieldFor())
	assert.Contains(t, err.Error(), "already taken")
}

func TestProvisionError_Unrecoverable(t *testing.T) {
	err := NewProvisionError(StageIdentityCreate, CategoryUnknown, "Something went wrong. Please try again.", nil)

	assert.False(t, err.Recoverable())
	assert.Empty(t, err.FieldFor())
}
