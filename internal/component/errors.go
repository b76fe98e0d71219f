package component

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Error codes for load failures.
const (
	ErrCodeNotFound    = "E005" // File not found or unreadable
	ErrCodeParse       = "E004" // Malformed document
	ErrCodeSchema      = "E010" // Document violates #Document
	ErrCodeUnsupported = "E011" // Unknown file extension
)

// LoadError represents an error that occurred while loading a component file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// fromCUE converts every error in a CUE error list into a LoadError.
func fromCUE(code string, err error) []error {
	var out []error
	for _, e := range errors.Errors(err) {
		le := &LoadError{Code: code, Message: e.Error()}
		if pos := errors.Positions(e); len(pos) > 0 {
			le.Pos = pos[0]
		}
		out = append(out, le)
	}
	if len(out) == 0 {
		out = append(out, &LoadError{Code: code, Message: err.Error()})
	}
	return out
}
