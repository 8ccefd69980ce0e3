package usecase

import (
	"errors"
	"strings"

	"store-service/app/domain"
)

// TranslatedError is the user-facing classification of a raw backend
// failure. Field is the form field the error attaches to, or "" for a
// page-level notice.
type TranslatedError struct {
	Category    domain.ErrorCategory
	UserMessage string
	Field       string
}

// ErrorTranslator maps raw backend failure signals to user-facing
// categories. Classification is by known sentinel errors first, then by
// pattern-matching known backend message substrings; anything else
// falls back to a generic retryable message.
type ErrorTranslator struct{}

// NewErrorTranslator creates a new ErrorTranslator instance
func NewErrorTranslator() *ErrorTranslator {
	return &ErrorTranslator{}
}

// Translate classifies a raw error into a category and user message
func (t *ErrorTranslator) Translate(rawError error) TranslatedError {
	if rawError == nil {
		return TranslatedError{Category: domain.CategoryUnknown, UserMessage: genericMessage}
	}

	switch {
	case errors.Is(rawError, domain.ErrDuplicateHandle), errors.Is(rawError, domain.ErrHandleUnavailable):
		return duplicateHandleResult()
	case errors.Is(rawError, domain.ErrAlreadyRegistered):
		return alreadyRegisteredResult()
	case errors.Is(rawError, domain.ErrRateLimitExceeded):
		return rateLimitedResult()
	case errors.Is(rawError, domain.ErrPermissionDenied):
		return permissionDeniedResult()
	}

	return t.classifyMessage(rawError.Error())
}

// classifyMessage classifies an error by its message content
func (t *ErrorTranslator) classifyMessage(message string) TranslatedError {
	messageLower := strings.ToLower(message)

	// Duplicate registration signals
	if containsAny(messageLower, []string{"already registered", "already exists", "user exists", "account exists"}) {
		return alreadyRegisteredResult()
	}

	// Rate limiting signals
	if containsAny(messageLower, []string{"rate limit", "too many requests", "request was limited"}) {
		return rateLimitedResult()
	}

	// Handle uniqueness signals from the storage layer
	if containsAny(messageLower, []string{"duplicate key", "unique constraint", "unique violation", "duplicate handle"}) {
		return duplicateHandleResult()
	}

	// Authorization signals
	if containsAny(messageLower, []string{"permission denied", "not authorized", "forbidden", "access denied"}) {
		return permissionDeniedResult()
	}

	return TranslatedError{
		Category:    domain.CategoryUnknown,
		UserMessage: genericMessage,
	}
}

const genericMessage = "Something went wrong. Please try again."

func alreadyRegisteredResult() TranslatedError {
	return TranslatedError{
		Category:    domain.CategoryAlreadyRegistered,
		UserMessage: "An account with this email already exists. Try signing in instead.",
		Field:       "email",
	}
}

func rateLimitedResult() TranslatedError {
	return TranslatedError{
		Category:    domain.CategoryRateLimited,
		UserMessage: "Too many attempts. Please wait a moment and try again.",
	}
}

func duplicateHandleResult() TranslatedError {
	return TranslatedError{
		Category:    domain.CategoryDuplicateHandle,
		UserMessage: "This handle is already taken. Please choose another one.",
		Field:       "handle",
	}
}

func permissionDeniedResult() TranslatedError {
	return TranslatedError{
		Category:    domain.CategoryPermissionDenied,
		UserMessage: "You do not have permission to perform this action.",
	}
}

// containsAny checks if the text contains any of the given substrings
func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}
