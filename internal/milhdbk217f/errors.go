package milhdbk217f

import (
	"errors"
	"fmt"
)

// CalcError represents a failed reliability calculation.
//
// Calculation errors fall into four categories:
//   - Index range: an ID falls outside the table it selects from
//   - Unknown category: a subcategory (or subcategory/type pair) has no model
//   - Missing attribute: a required field is absent from the record
//   - Precondition: a present value violates a domain constraint
//
// CalcError carries the offending field and value so callers can report the
// failure without parsing the message.
type CalcError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Field is the record key that caused the failure.
	Field string

	// Value is the offending value; nil for missing attributes.
	Value any

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes calculation errors.
type ErrorCode string

const (
	// ErrCodeIndexRange indicates an ID outside its lookup table.
	ErrCodeIndexRange ErrorCode = "INDEX_RANGE"

	// ErrCodeUnknownCategory indicates an unsupported component family or sub-family.
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"

	// ErrCodeMissingAttribute indicates a required record field is absent.
	ErrCodeMissingAttribute ErrorCode = "MISSING_ATTRIBUTE"

	// ErrCodePrecondition indicates an input that fails a domain constraint.
	ErrCodePrecondition ErrorCode = "PRECONDITION"
)

// Error implements the error interface.
func (e *CalcError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (%s=%v)", e.Code, e.Message, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

func hasCode(err error, code ErrorCode) bool {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// IsIndexRange returns true if the error is an index-range error.
// Uses errors.As to handle wrapped errors.
func IsIndexRange(err error) bool { return hasCode(err, ErrCodeIndexRange) }

// IsUnknownCategory returns true if the error is an unknown-category error.
func IsUnknownCategory(err error) bool { return hasCode(err, ErrCodeUnknownCategory) }

// IsMissingAttribute returns true if the error is a missing-attribute error.
func IsMissingAttribute(err error) bool { return hasCode(err, ErrCodeMissingAttribute) }

// IsPrecondition returns true if the error is a precondition error.
func IsPrecondition(err error) bool { return hasCode(err, ErrCodePrecondition) }

// NewIndexRangeError reports id outside the 1..size domain of a table.
func NewIndexRangeError(field string, id, size int) *CalcError {
	return &CalcError{
		Code:    ErrCodeIndexRange,
		Field:   field,
		Value:   id,
		Message: fmt.Sprintf("%s must be in [1, %d]", field, size),
	}
}

// NewUnknownCategoryError reports a family selector with no model.
func NewUnknownCategoryError(field string, id int, family string) *CalcError {
	return &CalcError{
		Code:    ErrCodeUnknownCategory,
		Field:   field,
		Value:   id,
		Message: fmt.Sprintf("no %s model for %s %d", family, field, id),
	}
}

// NewMissingAttributeError reports an absent required field.
func NewMissingAttributeError(field string) *CalcError {
	return &CalcError{
		Code:    ErrCodeMissingAttribute,
		Field:   field,
		Message: "required attribute is missing",
	}
}

// NewPreconditionError reports a present value that violates a constraint.
func NewPreconditionError(field string, value any, message string) *CalcError {
	return &CalcError{
		Code:    ErrCodePrecondition,
		Field:   field,
		Value:   value,
		Message: message,
	}
}
