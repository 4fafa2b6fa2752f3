// Package coverage compares two lcov coverage summaries and reports how line and
// function coverage moved.
package coverage

import (
	"errors"
	"fmt"
)

// ErrWrongArgumentCount is returned when the comparator is not given exactly a
// baseline and a current summary.
var ErrWrongArgumentCount = errors.New("Wrong number of script arguments") //nolint:staticcheck // message is shown verbatim in CI logs

// ParseError represents a summary that lacks a coverage figure
type ParseError struct {
	Marker  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("coverage parse error: %q: %s", e.Marker, e.Message)
}

// FileReadError represents an error reading a summary file
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
