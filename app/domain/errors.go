package domain

import "errors"

// Provisioning and registry errors
var (
	// Handle errors
	ErrInvalidHandleFormat = errors.New("invalid handle format")
	ErrHandleUnavailable   = errors.New("handle unavailable")
	ErrDuplicateHandle     = errors.New("duplicate handle")

	// Store errors
	ErrStoreNotFound = errors.New("store not found")

	// Identity errors
	ErrAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Flow errors
	ErrFlowNotFound   = errors.New("signup flow not found")
	ErrFlowExpired    = errors.New("signup flow expired")
	ErrFlowSubmitting = errors.New("submission already in progress")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	// Rate limiting errors
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// General errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrInternal         = errors.New("internal error")
)

// ErrorCategory classifies a backend failure for the presentation layer.
// The category decides whether the error attaches to a specific form
// field or surfaces as a page-level notice.
type ErrorCategory string

const (
	CategoryAlreadyRegistered ErrorCategory = "already_registered"
	CategoryRateLimited       ErrorCategory = "rate_limited"
	CategoryDuplicateHandle   ErrorCategory = "duplicate_handle"
	CategoryPermissionDenied  ErrorCategory = "permission_denied"
	CategoryUnknown           ErrorCategory = "unknown"
)

// ProvisionStage names the pipeline step an error originated from
type ProvisionStage string

const (
	StageHandleCheck    ProvisionStage = "handle_check"
	StageIdentityCreate ProvisionStage = "identity_create"
	StageStoreCreate    ProvisionStage = "store_create"
)

// ProvisionError is the typed result of a failed provisioning stage.
// No raw backend error crosses the provisioner boundary without being
// wrapped in one of these.
type ProvisionError struct {
	Stage    ProvisionStage
	Category ErrorCategory
	Message  string
	Cause    error
}

func (e *ProvisionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

// NewProvisionError creates a provision error for a pipeline stage
func NewProvisionError(stage ProvisionStage, category ErrorCategory, message string, cause error) *ProvisionError {
	return &ProvisionError{
		Stage:    stage,
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

// Recoverable reports whether the user can fix the failure by editing
// the form and resubmitting, as opposed to an infrastructure failure.
func (e *ProvisionError) Recoverable() bool {
	switch e.Category {
	case CategoryDuplicateHandle, CategoryAlreadyRegistered:
		return true
	default:
		return false
	}
}

// FieldFor returns the form field the error should attach to, or ""
// when the error belongs in a page-level notice.
func (e *ProvisionError) FieldFor() string {
	switch e.Category {
	case CategoryDuplicateHandle:
		return "handle"
	case CategoryAlreadyRegistered:
		return "email"
	default:
		return ""
	}
}
