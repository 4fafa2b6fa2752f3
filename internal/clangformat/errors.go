// Package clangformat converts a clang-format violation log into a JUnit test report.
package clangformat

import (
	"errors"
	"fmt"
)

// ErrViolationsFound is returned once the report has been written and at least one
// file is badly formatted.
var ErrViolationsFound = errors.New("Failure detected, code has not been correctly formatted") //nolint:staticcheck // message is shown verbatim in CI logs

// ErrDetailBeforeHeader is returned when a detail line precedes every violation header.
var ErrDetailBeforeHeader = errors.New("detail line appears before any violation header")

// ParseError represents a malformed violation log
type ParseError struct {
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading the violation log
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
