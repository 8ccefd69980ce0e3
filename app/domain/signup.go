package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignupStep represents the state of a signup flow
type SignupStep string

const (
	StepCredentials  SignupStep = "credentials"
	StepStoreDetails SignupStep = "store_details"
	StepSubmitting   SignupStep = "submitting"
	StepSucceeded    SignupStep = "succeeded"
	StepFailed       SignupStep = "failed"
)

// RedirectTarget tells the client where to route after provisioning
type RedirectTarget string

const (
	// RedirectDashboard - full signup completed, store exists
	RedirectDashboard RedirectTarget = "dashboard"
	// RedirectStoreSetup - account created, store details deferred
	RedirectStoreSetup RedirectTarget = "store_setup"
	// RedirectSignInRequired - account and store exist but the
	// post-creation sign-in failed; route to the normal sign-in screen
	RedirectSignInRequired RedirectTarget = "sign_in_required"
)

// SignupFlow is the ephemeral state of one onboarding attempt. It lives
// in memory for the duration of the flow and is never persisted.
type SignupFlow struct {
	ID          uuid.UUID      `json:"id"`
	Step        SignupStep     `json:"step"`
	Credentials Credentials    `json:"-"`
	Details     StoreDetails   `json:"store_details"`
	Errors      FieldErrors    `json:"errors,omitempty"`
	Notice      string         `json:"notice,omitempty"`
	Redirect    RedirectTarget `json:"redirect,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
}

// NewSignupFlow creates a flow in its initial credentials step
func NewSignupFlow(ttl time.Duration) *SignupFlow {
	now := time.Now()
	return &SignupFlow{
		ID:        uuid.New(),
		Step:      StepCredentials,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the flow has outlived its TTL
func (f *SignupFlow) Expired() bool {
	return time.Now().After(f.ExpiresAt)
}

// Terminal reports whether the flow accepts no further submissions
func (f *SignupFlow) Terminal() bool {
	return f.Step == StepSucceeded
}
