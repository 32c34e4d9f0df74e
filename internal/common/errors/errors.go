// Package errors provides standardized error handling for the assistant engine
// and its project stores.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Materialization errors. These never cross the engine boundary: the
	// materializer catches them, logs them and falls back to a local preview.
	ErrCodeMaterializationFailed   ErrorCode = "MATERIALIZATION_FAILED"
	ErrCodePayloadValidationFailed ErrorCode = "PAYLOAD_VALIDATION_FAILED"
	ErrCodeCreatorNotConfigured    ErrorCode = "CREATOR_NOT_CONFIGURED"

	// Collaborator errors.
	ErrCodeProjectStoreFailed    ErrorCode = "PROJECT_STORE_FAILED"
	ErrCodeProjectServiceFailed  ErrorCode = "PROJECT_SERVICE_FAILED"
	ErrCodeProjectServiceTimeout ErrorCode = "PROJECT_SERVICE_TIMEOUT"

	// Session errors.
	ErrCodeSessionStoreFailed  ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeSessionDecodeFailed ErrorCode = "SESSION_DECODE_FAILED"

	// Configuration errors.
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewMaterializationFailedError wraps a failed external creation call. Retryable
// from the operator's point of view, but the engine already served a fallback.
func NewMaterializationFailedError(intent string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMaterializationFailed,
		Message:   "External project creation failed",
		Details:   fmt.Sprintf("intent: %s, error: %s", intent, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadValidationFailedError creates a non-retryable payload schema error.
func NewPayloadValidationFailedError(intent, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadValidationFailed,
		Message:   "Creation payload failed schema validation",
		Details:   fmt.Sprintf("intent: %s, %s", intent, details),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCreatorNotConfiguredError signals that no creation contract is wired for
// an intent. Non-retryable; the fallback preview path handles it.
func NewCreatorNotConfiguredError(intent string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCreatorNotConfigured,
		Message:   "No creation service configured for intent",
		Details:   fmt.Sprintf("intent: %s", intent),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProjectStoreFailedError creates a retryable database error.
func NewProjectStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProjectStoreFailed,
		Message:   "Project store insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProjectServiceFailedError creates a retryable remote service error.
func NewProjectServiceFailedError(service string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProjectServiceFailed,
		Message:   fmt.Sprintf("Project service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProjectServiceTimeoutError creates a retryable remote timeout error.
func NewProjectServiceTimeoutError(service string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProjectServiceTimeout,
		Message:   fmt.Sprintf("Project service '%s' timeout", service),
		Details:   "creation call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session store error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionDecodeFailedError creates a non-retryable session payload error.
func NewSessionDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionDecodeFailed,
		Message:   "Session payload could not be decoded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError creates a non-retryable configuration error.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeProjectStoreFailed,
		ErrCodeProjectServiceFailed,
		ErrCodeSessionStoreFailed:
		return 3

	case ErrCodeProjectServiceTimeout,
		ErrCodeMaterializationFailed:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "MATERIALIZATION") || strings.Contains(codeStr, "CREATOR"):
		return "MATERIALIZATION"
	case strings.Contains(codeStr, "PROJECT"):
		return "PROJECT"
	case strings.Contains(codeStr, "SESSION"):
		return "SESSION"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CONFIG"):
		return "CONFIG"
	default:
		return "OTHER"
	}
}
