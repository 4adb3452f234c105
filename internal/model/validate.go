package model

import (
	"fmt"
	"strings"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ValidateAsset checks an AssetRecord for constraint violations, including
// the conservation invariant on the ownership table. It returns a
// *ValidationError if any rules fail, or nil if the record is valid.
func ValidateAsset(a *AssetRecord) error {
	var ve ValidationError

	if strings.TrimSpace(a.ID) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "id", Message: "is required"})
	}
	if strings.TrimSpace(a.ExternalRef) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "external_ref", Message: "is required"})
	}
	if strings.TrimSpace(a.Originator) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "originator", Message: "is required"})
	}
	if a.TotalValue <= 0 {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "total_value",
			Message: fmt.Sprintf("must be positive, got %d", a.TotalValue),
		})
	}
	if !a.Status.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "status",
			Message: fmt.Sprintf("invalid value %q", a.Status),
		})
	}

	var sum int64
	for holder, bp := range a.Ownership {
		if holder == "" {
			ve.Errors = append(ve.Errors, FieldError{Field: "ownership", Message: "holder identity must not be empty"})
		}
		if bp <= 0 || bp > TotalBasisPoints {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   "ownership",
				Message: fmt.Sprintf("share for %s must be in [1, %d], got %d", holder, TotalBasisPoints, bp),
			})
		}
		sum += bp
	}
	if sum != TotalBasisPoints {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "ownership",
			Message: fmt.Sprintf("shares must sum to %d, got %d", TotalBasisPoints, sum),
		})
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
