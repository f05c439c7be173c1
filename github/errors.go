package github

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmgilman/ghwatch/errors"
)

// GitHub-specific error codes (use existing codes from errors library).
// These are convenience aliases for readability in GitHub context.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	// Missing user or repo arguments are reported with this code.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork
)

// StatusCode maps an HTTP status from the GitHub API to an error code.
func StatusCode(statusCode int) errors.ErrorCode {
	switch statusCode {
	case http.StatusNotFound:
		return errors.CodeNotFound
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusConflict:
		return errors.CodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		return errors.CodeRateLimit
	case http.StatusServiceUnavailable:
		return errors.CodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return errors.CodeTimeout
	}

	if statusCode >= 500 {
		return errors.CodeNetwork
	}
	return errors.CodeInternal
}

// WrapHTTPError wraps an error based on HTTP status code from GitHub API.
// The status code is attached as context.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	wrapped := errors.Wrap(err, StatusCode(statusCode), message)
	return errors.WithContext(wrapped, "status", statusCode)
}

// ClassifyMessage derives an error code from free-form error text, such as
// the stderr of a CLI invocation that did not report an HTTP status.
func ClassifyMessage(text string) errors.ErrorCode {
	switch {
	case contains(text, "not found", "could not find", "no such"):
		return errors.CodeNotFound
	case contains(text, "authentication failed", "not logged in", "unauthorized", "bad credentials"):
		return errors.CodeUnauthorized
	case contains(text, "rate limit"):
		return errors.CodeRateLimit
	case contains(text, "forbidden", "permission denied"):
		return errors.CodeForbidden
	case contains(text, "invalid", "malformed", "bad request"):
		return errors.CodeInvalidInput
	case contains(text, "conflict", "already exists"):
		return errors.CodeConflict
	case contains(text, "timeout", "timed out"):
		return errors.CodeTimeout
	case contains(text, "network", "connection"):
		return errors.CodeNetwork
	default:
		return errors.CodeInternal
	}
}

// IsNotFound reports whether err carries ErrCodeNotFound.
func IsNotFound(err error) bool {
	return errors.HasCode(err, ErrCodeNotFound)
}

// contains checks if any of the patterns exist in the text (case-insensitive).
func contains(text string, patterns ...string) bool {
	lowText := strings.ToLower(text)
	for _, pattern := range patterns {
		if strings.Contains(lowText, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}
