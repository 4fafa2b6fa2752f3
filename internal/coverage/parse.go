package coverage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/ci-reports/internal/types"
)

const (
	// LinesMarker identifies the line coverage row of an lcov summary
	LinesMarker = "lines......"
	// FunctionsMarker identifies the function coverage row of an lcov summary
	FunctionsMarker = "functions.."
)

var (
	// First number after the marker, terminated by a percent sign
	linesPattern     = regexp.MustCompile(regexp.QuoteMeta(LinesMarker) + `[^0-9%]*([0-9]+(?:\.[0-9]+)?)\s*%`)
	functionsPattern = regexp.MustCompile(regexp.QuoteMeta(FunctionsMarker) + `[^0-9%]*([0-9]+(?:\.[0-9]+)?)\s*%`)
)

// ParseSummary extracts line and function coverage from an lcov summary such as
//
//	  lines......: 80.0% (800 of 1000 lines)
//	  functions..: 70.0% (70 of 100 functions)
//
// Only the first row carrying each marker is considered.
func ParseSummary(r io.Reader) (types.CoverageSample, error) {
	var linesRow, functionsRow string
	var haveLines, haveFunctions bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !haveLines && strings.Contains(line, LinesMarker) {
			linesRow, haveLines = line, true
		}
		if !haveFunctions && strings.Contains(line, FunctionsMarker) {
			functionsRow, haveFunctions = line, true
		}
	}
	if err := scanner.Err(); err != nil {
		return types.ZeroSample, &FileReadError{Message: "failed to read coverage summary", Cause: err}
	}

	if !haveLines {
		return types.ZeroSample, &ParseError{Marker: LinesMarker, Message: "marker not found"}
	}
	if !haveFunctions {
		return types.ZeroSample, &ParseError{Marker: FunctionsMarker, Message: "marker not found"}
	}

	lines, err := extractPercent(linesPattern, LinesMarker, linesRow)
	if err != nil {
		return types.ZeroSample, err
	}
	functions, err := extractPercent(functionsPattern, FunctionsMarker, functionsRow)
	if err != nil {
		return types.ZeroSample, err
	}

	return types.CoverageSample{Lines: lines, Functions: functions}, nil
}

func extractPercent(pattern *regexp.Regexp, marker, row string) (float64, error) {
	match := pattern.FindStringSubmatch(row)
	if match == nil {
		return 0, &ParseError{Marker: marker, Message: fmt.Sprintf("no percentage in %q", strings.TrimSpace(row))}
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Marker: marker, Message: err.Error()}
	}
	return value, nil
}

// ParseSummaryFile opens path and parses it with ParseSummary.
func ParseSummaryFile(path string) (types.CoverageSample, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.ZeroSample, &FileReadError{
			Message: fmt.Sprintf("failed to open coverage summary: %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = file.Close() }()

	return ParseSummary(file)
}
