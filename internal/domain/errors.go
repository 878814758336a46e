package domain

import (
	"fmt"
)

// LoadError is the only fatal failure of a run: the genome export could not
// be opened, read, or contained no parseable data rows.
type LoadError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading genome %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("loading genome %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a LoadError for the given export path.
func NewLoadError(path, reason string, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}

// ValidationError represents input validation errors.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}
