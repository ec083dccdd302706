package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// StorageError wraps a failure from the persistence engine with a
// human-readable message and a severity tier. Callers own the user-visible
// messaging and retry affordance.
type StorageError struct {
	Message  string
	Details  string
	Severity Severity
	Err      error
}

func (e *StorageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("storage: %s (%s)", e.Message, e.Details)
	}
	return fmt.Sprintf("storage: %s", e.Message)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError creates a StorageError wrapping err.
func NewStorageError(message string, severity Severity, err error) *StorageError {
	return &StorageError{Message: message, Severity: severity, Err: err}
}

// SeverityOf extracts the severity from a wrapped StorageError chain.
// Returns SeverityMedium when err carries no StorageError.
func SeverityOf(err error) Severity {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Severity
	}
	return SeverityMedium
}
