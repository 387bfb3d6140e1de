package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoDifferential is returned when no scorer exceeds the generation
// threshold: an assessment too ambiguous to rank fails outright rather than
// returning a partial response.
var ErrNoDifferential = errors.New("no differential diagnosis exceeded the generation threshold")

// AssessError represents a standardized error response
type AssessError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// Error implements the error interface
func (e *AssessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrNoDiagnosis    = "NO_DIFFERENTIAL"
	ErrDatabaseError  = "DATABASE_ERROR"
	ErrCacheError     = "CACHE_ERROR"
	ErrNotFound       = "NOT_FOUND"
	ErrRateLimit      = "RATE_LIMIT_EXCEEDED"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
	ErrValidation     = "VALIDATION_ERROR"
)

// ValidationError represents input validation errors raised by the schema
// layer before a survey reaches the core
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewAssessError creates a new AssessError with timestamp
func NewAssessError(code, message, details, requestID string) *AssessError {
	return &AssessError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
