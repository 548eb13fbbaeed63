package rules

import (
	"fmt"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// Load error codes (E001-E099).
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Path or table file not found
	ErrCodeReadFailed  = "E003" // File could not be read
	ErrCodeNoFiles     = "E004" // No table files found
	ErrCodeMissingCol  = "E005" // Required CSV column missing
	ErrCodeInvalidRow  = "E006" // Malformed row value
	ErrCodeCUELoad     = "E007" // CUE load/build failed
	ErrCodeCUESchema   = "E008" // CUE value does not satisfy the schema
	ErrCodeValidation  = "E009" // Tables failed validation (see ValidationErrors)
	ErrCodeStoreFailed = "E010" // SQLite table store error
)

// LoadError represents a failure while reading rule tables.
type LoadError struct {
	Code    string
	Message string
	Source  string    // file the error refers to, if known
	Line    int       // 1-based line for CSV rows
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	switch {
	case e.Pos.IsValid():
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, msg)
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s: %s", e.Source, e.Line, e.Code, msg)
	case e.Source != "":
		return fmt.Sprintf("%s: %s: %s", e.Source, e.Code, msg)
	default:
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(code string, err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}
