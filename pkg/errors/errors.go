package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	// Validation errors
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInvalid    ErrorType = "invalid"
	ErrorTypeRange      ErrorType = "range"

	// Business logic errors
	ErrorTypeNotFound  ErrorType = "not_found"
	ErrorTypeConflict  ErrorType = "conflict"
	ErrorTypeDuplicate ErrorType = "duplicate"

	// System errors
	ErrorTypePersistence ErrorType = "persistence"
	ErrorTypeConfig      ErrorType = "configuration"
	ErrorTypeInternal    ErrorType = "internal"
)

// ServiceError represents a standardized error with context
type ServiceError struct {
	Type      ErrorType              `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Operation string                 `json:"operation"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Retryable bool                   `json:"retryable"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Operation, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Operation, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison
func (e *ServiceError) Is(target error) bool {
	if target == nil {
		return false
	}

	if se, ok := target.(*ServiceError); ok {
		return e.Type == se.Type && e.Code == se.Code
	}

	return errors.Is(e.Cause, target)
}

// WithMetadata attaches a metadata key/value pair and returns the error.
func (e *ServiceError) WithMetadata(key string, value interface{}) *ServiceError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(errType ErrorType, operation, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Type:      errType,
		Code:      code,
		Message:   message,
		Operation: operation,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(operation, message string) *ServiceError {
	return newError(ErrorTypeValidation, operation, "VALIDATION_FAILED", message, nil)
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(operation, message string) *ServiceError {
	return newError(ErrorTypeNotFound, operation, "NOT_FOUND", message, nil)
}

// NewPersistenceError creates a persistence error. Persistence errors are
// retryable: the backing file may become writable again.
func NewPersistenceError(operation, message string, cause error) *ServiceError {
	err := newError(ErrorTypePersistence, operation, "PERSISTENCE_FAILED", message, cause)
	err.Retryable = true
	return err
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(operation, message string, cause error) *ServiceError {
	return newError(ErrorTypeConfig, operation, "CONFIG_INVALID", message, cause)
}

// IsType reports whether err is a ServiceError of the given type.
func IsType(err error, errType ErrorType) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Type == errType
	}
	return false
}
