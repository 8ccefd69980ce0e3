package kratos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"store-service/app/domain"

	kratosclient "github.com/ory/kratos-client-go"
)

// transformKratosError transforms Kratos API errors into domain errors.
// The classification relies on known message substrings because Kratos
// reports many failures only through UI messages.
func (a *ClientAdapter) transformKratosError(err error, httpResp *http.Response, operation string) error {
	a.logger.Debug("transforming kratos error",
		"error", err,
		"error_type", fmt.Sprintf("%T", err),
		"operation", operation,
		"http_status", getHTTPStatus(httpResp))

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if classified := a.parseGenericError(kratosErr, operation); classified != nil {
			return classified
		}
	}

	if httpResp != nil {
		return a.parseHTTPStatusError(httpResp.StatusCode, operation, err)
	}

	return fmt.Errorf("kratos %s failed: %w", operation, err)
}

// parseGenericError extracts a classification from the error body
func (a *ClientAdapter) parseGenericError(kratosErr *kratosclient.GenericOpenAPIError, operation string) error {
	body := kratosErr.Body()

	var errorResp map[string]interface{}
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr != nil {
		return a.classifyErrorMessage(string(body), operation)
	}

	// UI messages carry the most specific failure reason
	if ui, ok := errorResp["ui"].(map[string]interface{}); ok {
		if classified := a.parseUIMessages(ui, operation); classified != nil {
			return classified
		}
	}

	if message, ok := errorResp["message"].(string); ok {
		return a.classifyErrorMessage(message, operation)
	}

	if reason, ok := errorResp["reason"].(string); ok {
		return a.classifyErrorMessage(reason, operation)
	}

	if errorObj, ok := errorResp["error"].(map[string]interface{}); ok {
		if message, ok := errorObj["message"].(string); ok {
			return a.classifyErrorMessage(message, operation)
		}
	}

	return nil
}

// parseUIMessages scans flow UI messages and nodes for a classifiable
// failure reason
func (a *ClientAdapter) parseUIMessages(ui map[string]interface{}, operation string) error {
	if messages, ok := ui["messages"].([]interface{}); ok {
		for _, msg := range messages {
			if msgMap, ok := msg.(map[string]interface{}); ok {
				if text, ok := msgMap["text"].(string); ok {
					if classified := a.classifyErrorMessage(text, operation); classified != nil {
						return classified
					}
				}
			}
		}
	}

	if nodes, ok := ui["nodes"].([]interface{}); ok {
		for _, node := range nodes {
			nodeMap, ok := node.(map[string]interface{})
			if !ok {
				continue
			}
			if messages, ok := nodeMap["messages"].([]interface{}); ok {
				for _, msg := range messages {
					if msgMap, ok := msg.(map[string]interface{}); ok {
						if text, ok := msgMap["text"].(string); ok {
							if classified := a.classifyErrorMessage(text, operation); classified != nil {
								return classified
							}
						}
					}
				}
			}
		}
	}

	return nil
}

// parseHTTPStatusError maps HTTP status codes to domain errors
func (a *ClientAdapter) parseHTTPStatusError(statusCode int, operation string, originalErr error) error {
	switch statusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, operation)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, operation)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, operation)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, operation)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: kratos %s rejected the request: %v", domain.ErrValidationFailed, operation, originalErr)
	default:
		return fmt.Errorf("kratos %s failed with HTTP %d: %w", operation, statusCode, originalErr)
	}
}

// classifyErrorMessage classifies a Kratos message into a domain error,
// or returns nil when the message is not recognized
func (a *ClientAdapter) classifyErrorMessage(message, operation string) error {
	messageLower := strings.ToLower(message)

	if containsAny(messageLower, []string{"already registered", "already exists", "user exists", "duplicate"}) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, message)
	}

	if containsAny(messageLower, []string{"rate limit", "too many requests"}) {
		return fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, message)
	}

	if containsAny(messageLower, []string{"invalid credentials", "wrong password", "authentication failed", "login failed"}) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, message)
	}

	if containsAny(messageLower, []string{"access denied", "not allowed", "forbidden"}) {
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, message)
	}

	if containsAny(messageLower, []string{"password policy", "password too weak", "password must", "missing properties", "is missing"}) {
		return fmt.Errorf("%w: %s", domain.ErrValidationFailed, message)
	}

	return nil
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
