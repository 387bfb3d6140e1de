package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAssessError(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		message   string
		details   string
		requestID string
	}{
		{
			name:      "Validation error",
			code:      ErrValidation,
			message:   "Survey validation failed",
			details:   "heart_rate outside plausible range",
			requestID: "req-123",
		},
		{
			name:      "Database error",
			code:      ErrDatabaseError,
			message:   "Assessment lookup failed",
			details:   "Unable to connect to PostgreSQL",
			requestID: "req-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAssessError(tt.code, tt.message, tt.details, tt.requestID)

			if err.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, err.Code)
			}
			if err.Message != tt.message {
				t.Errorf("Expected message %s, got %s", tt.message, err.Message)
			}
			if err.Details != tt.details {
				t.Errorf("Expected details %s, got %s", tt.details, err.Details)
			}
			if err.RequestID != tt.requestID {
				t.Errorf("Expected requestID %s, got %s", tt.requestID, err.RequestID)
			}

			// Check that timestamp is recent (within last minute)
			if time.Since(err.Timestamp) > time.Minute {
				t.Errorf("Timestamp should be recent, got %v", err.Timestamp)
			}

			expectedError := tt.code + ": " + tt.message
			if err.Error() != expectedError {
				t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("breathing.spo2", "value outside plausible range", 250.0)

	if err.Field != "breathing.spo2" {
		t.Errorf("Expected field breathing.spo2, got %s", err.Field)
	}

	expected := "validation error for field 'breathing.spo2': value outside plausible range"
	if err.Error() != expected {
		t.Errorf("Expected error string %s, got %s", expected, err.Error())
	}
}

func TestErrNoDifferentialIsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("running assessment: %w", ErrNoDifferential)

	if !errors.Is(wrapped, ErrNoDifferential) {
		t.Error("Expected wrapped error to match ErrNoDifferential")
	}
}
