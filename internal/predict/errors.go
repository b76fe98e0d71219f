package predict

import (
	"errors"
	"fmt"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

// ComponentError attaches the identity of a component to a calculation
// failure.
type ComponentError struct {
	// Index is the position of the component in its batch.
	Index int

	// HardwareID is the component's hardware_id; empty when absent.
	HardwareID string

	Err error
}

// Error implements the error interface.
func (e *ComponentError) Error() string {
	if e.HardwareID != "" {
		return fmt.Sprintf("component %q: %v", e.HardwareID, e.Err)
	}
	return fmt.Sprintf("component #%d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying calculation error.
func (e *ComponentError) Unwrap() error {
	return e.Err
}

// Code returns the calculation error code, or "" for other failures.
func (e *ComponentError) Code() milhdbk217f.ErrorCode {
	var ce *milhdbk217f.CalcError
	if errors.As(e.Err, &ce) {
		return ce.Code
	}
	return ""
}
