// Package errors provides the structured error type used across the site.
//
// Nothing in the page pipeline lets these errors reach a visitor: upstream and
// cache failures degrade to cached or default content, delivery failures degrade
// to a stored message. The codes exist so logs and metrics can tell the
// degradations apart.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodePlaceLookupFailed  ErrorCode = "PLACE_LOOKUP_FAILED"
	ErrCodePlaceLookupTimeout ErrorCode = "PLACE_LOOKUP_TIMEOUT"
	ErrCodePlaceStatusNotOK   ErrorCode = "PLACE_STATUS_NOT_OK"
	ErrCodePlacePayload       ErrorCode = "PLACE_PAYLOAD_INVALID"

	ErrCodeCacheReadFailed  ErrorCode = "CACHE_READ_FAILED"
	ErrCodeCacheWriteFailed ErrorCode = "CACHE_WRITE_FAILED"

	ErrCodeContactValidation      ErrorCode = "CONTACT_VALIDATION_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeMessageStoreFailed     ErrorCode = "MESSAGE_STORE_FAILED"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause, if any, to errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

func newError(code ErrorCode, message string, cause error, retryable bool) *StandardError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewPlaceLookupFailedError wraps a transport failure or unexpected HTTP status.
func NewPlaceLookupFailedError(err error) *StandardError {
	return newError(ErrCodePlaceLookupFailed, "Place details lookup failed", err, true)
}

// NewPlaceLookupTimeoutError marks a lookup that exceeded its deadline.
func NewPlaceLookupTimeoutError(err error) *StandardError {
	return newError(ErrCodePlaceLookupTimeout, "Place details lookup timed out", err, true)
}

// NewPlaceStatusNotOKError records a non-OK envelope status such as REQUEST_DENIED.
func NewPlaceStatusNotOKError(status, upstreamMessage string) *StandardError {
	e := newError(ErrCodePlaceStatusNotOK, "Place details returned a non-OK status", nil, false)
	e.Details = fmt.Sprintf("status: %s", status)
	if upstreamMessage != "" {
		e.Details += ", message: " + upstreamMessage
	}
	return e
}

func NewPlacePayloadInvalidError(details string) *StandardError {
	e := newError(ErrCodePlacePayload, "Place details payload is malformed", nil, false)
	e.Details = details
	return e
}

func NewCacheReadFailedError(backend string, err error) *StandardError {
	e := newError(ErrCodeCacheReadFailed, "Place cache could not be read", err, false)
	e.Metadata = map[string]interface{}{"backend": backend}
	return e
}

func NewCacheWriteFailedError(backend string, err error) *StandardError {
	e := newError(ErrCodeCacheWriteFailed, "Place cache could not be written", err, true)
	e.Metadata = map[string]interface{}{"backend": backend}
	return e
}

// NewContactValidationError carries the user-facing messages in Metadata["errors"].
func NewContactValidationError(messages []string) *StandardError {
	e := newError(ErrCodeContactValidation, "Contact submission is invalid", nil, false)
	e.Details = strings.Join(messages, "; ")
	e.Metadata = map[string]interface{}{"errors": messages}
	return e
}

func NewNotificationSendFailedError(transport string, err error) *StandardError {
	e := newError(ErrCodeNotificationSendFailed, "Notification delivery failed", err, true)
	e.Metadata = map[string]interface{}{"transport": transport}
	return e
}

func NewMessageStoreFailedError(err error) *StandardError {
	return newError(ErrCodeMessageStoreFailed, "Contact message could not be stored", err, true)
}

func NewConfigInvalidError(details string) *StandardError {
	e := newError(ErrCodeConfigInvalid, "Invalid configuration", nil, false)
	e.Details = details
	return e
}

func NewBadRequestError(details string) *StandardError {
	e := newError(ErrCodeBadRequest, "Bad request", nil, false)
	e.Details = details
	return e
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandard normalizes any error into a StandardError.
func AsStandard(err error) *StandardError {
	if err == nil {
		return nil
	}
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return newError(ErrCodeInternal, "Unexpected error", err, false)
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "PLACE_"):
		return "UPSTREAM"
	case strings.HasPrefix(codeStr, "CACHE_"):
		return "CACHE"
	case strings.Contains(codeStr, "NOTIFICATION") || strings.Contains(codeStr, "MESSAGE"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "BAD_REQUEST"):
		return "VALIDATION"
	case strings.HasPrefix(codeStr, "CONFIG"):
		return "CONFIG"
	default:
		return "OTHER"
	}
}
