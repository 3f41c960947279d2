// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ValidationError reports the first required field missing or empty in a
// submission payload.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// Helper constructor
func NewMissingField(field string) error {
	return &ValidationError{Field: field}
}

// ErrEmptySelection is returned when a submission carries no issues.
var ErrEmptySelection = errors.New("At least one issue must be selected")

// IsValidation reports whether err maps to a 400 response.
func IsValidation(err error) bool {
	var v *ValidationError
	if errors.As(err, &v) {
		return true
	}
	return errors.Is(err, ErrEmptySelection)
}

// StorageError wraps a fault from the underlying store. No retry is
// attempted; callers surface it as a 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// ConfigurationError aborts startup when required environment variables
// are absent.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required environment variables: %v", e.Missing)
}

func NewConfigurationError(missing []string) error {
	return &ConfigurationError{Missing: missing}
}
