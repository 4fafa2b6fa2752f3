package clangformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/ci-reports/internal/types"
)

const (
	// errorMarker separates the file name from the diagnostic on a header line
	errorMarker = ": error:"
	// violationTag is the warning flag clang-format attaches to formatting violations
	violationTag = "[-Wclang-format-violations]"
)

// IsHeader reports whether a log line opens a new violation record.
func IsHeader(line string) bool {
	return strings.Contains(line, errorMarker) && strings.Contains(line, violationTag)
}

// ParseLog groups the lines of a violation log by file. Every line that is not a
// header is appended verbatim to the record opened by the closest preceding header.
func ParseLog(r io.Reader) ([]types.ViolationRecord, error) {
	var records []types.ViolationRecord
	current := -1

	reader := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := reader.ReadString('\n')
		if strings.HasSuffix(line, "\r\n") {
			line = strings.TrimSuffix(line, "\r\n") + "\n"
		}
		if line != "" {
			lineNum++
			if IsHeader(line) {
				records = append(records, types.ViolationRecord{
					FileName: line[:strings.Index(line, errorMarker)],
				})
				current = len(records) - 1
			} else {
				if current < 0 {
					return nil, &ParseError{Line: lineNum, Cause: ErrDetailBeforeHeader}
				}
				records[current].AppendDetail(line)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FileReadError{Message: "failed to read violation log", Cause: err}
		}
	}

	return records, nil
}

// HasLog reports whether the violation log at path exists and is non-empty.
// A missing or empty log means clang-format reported nothing.
func HasLog(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &FileReadError{Message: fmt.Sprintf("failed to stat %s", path), Cause: err}
	}
	return !info.IsDir() && info.Size() > 0, nil
}

// ParseLogFile parses the violation log at path. found is false when the log
// is missing or empty.
func ParseLogFile(path string) (records []types.ViolationRecord, found bool, err error) {
	found, err = HasLog(path)
	if err != nil || !found {
		return nil, false, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false, &FileReadError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() { _ = file.Close() }()

	records, err = ParseLog(file)
	if err != nil {
		return nil, true, err
	}
	return records, true, nil
}
