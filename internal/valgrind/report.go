package valgrind

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/ci-reports/internal/types"
	"go.uber.org/zap"
)

var kindIndex = func() map[string]int {
	m := make(map[string]int, len(types.ErrorKinds))
	for i, kind := range types.ErrorKinds {
		m[kind] = i
	}
	return m
}()

// unknownSlot is where unrecognized kinds are counted.
var unknownSlot = kindIndex[types.KindUnknown]

// KindIndex returns the tally slot for kind. Unrecognized kinds map to the
// UnknownError slot with ok set to false.
func KindIndex(kind string) (index int, ok bool) {
	index, ok = kindIndex[kind]
	if !ok {
		return unknownSlot, false
	}
	return index, true
}

type report struct {
	Errors []reportError `xml:"error"`
}

type reportError struct {
	Kind *string `xml:"kind"`
}

// ParseReport counts the error elements directly under the report root. failed is
// true when at least one error other than a still-reachable leak was found.
func ParseReport(r io.Reader, log *zap.Logger) (tally types.ErrorTally, failed bool, err error) {
	var doc report
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return tally, false, &ParseError{Message: "malformed XML", Cause: err}
	}

	for i, e := range doc.Errors {
		if e.Kind == nil {
			return tally, false, &ParseError{Message: fmt.Sprintf("error #%d has no kind", i+1)}
		}
		kind := strings.TrimSpace(*e.Kind)

		// Still reachable blocks are static and global objects
		if kind == types.KindStillReachable {
			continue
		}
		failed = true

		index, ok := KindIndex(kind)
		if !ok {
			log.Warn(fmt.Sprintf("Unknown error '%s'", kind), zap.String("kind", kind))
		}
		tally[index]++
	}

	return tally, failed, nil
}

// ParseReportFile parses the report at path.
func ParseReportFile(path string, log *zap.Logger) (types.ErrorTally, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.ErrorTally{}, false, &ParseError{Path: path, Message: "failed to open report", Cause: err}
	}
	defer func() { _ = file.Close() }()

	tally, failed, err := ParseReport(file, log)
	if err != nil {
		if parseErr, ok := err.(*ParseError); ok {
			parseErr.Path = path
		}
		return tally, false, err
	}
	return tally, failed, nil
}
