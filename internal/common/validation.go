package common

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a validation failure on a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError builds a FieldError.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// AsFieldError unwraps err into a FieldError when it carries one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(fieldName, "is required")
	}
	return nil
}

// ValidatePositiveAmount validates money amounts with an upper bound
func ValidatePositiveAmount(value int64, fieldName string, maxValue int64) error {
	if value <= 0 {
		return NewFieldError(fieldName, "must be positive")
	}
	if value > maxValue {
		return NewFieldError(fieldName, fmt.Sprintf("cannot exceed %d", maxValue))
	}
	return nil
}

// ValidateMaxLength caps free text fields.
func ValidateMaxLength(value, fieldName string, maxLength int) error {
	if len(value) > maxLength {
		return NewFieldError(fieldName, fmt.Sprintf("cannot exceed %d characters", maxLength))
	}
	return nil
}
