// Package valgrind summarizes valgrind XML reports of test suite runs into a CSV matrix
// of error counts per suite and error kind.
package valgrind

import "fmt"

// ParseError represents a valgrind report that could not be decoded
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "valgrind report"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", msg, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
