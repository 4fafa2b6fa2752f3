package clangformat

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/ci-reports/internal/types"
)

// SuiteName is the name of the JUnit suite holding clang-format results.
const SuiteName = "clang-format"

// TestSuite is a JUnit testsuite element.
type TestSuite struct {
	XMLName   xml.Name   `xml:"testsuite"`
	Errors    int        `xml:"errors,attr"`
	Failures  int        `xml:"failures,attr"`
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	TestCases []TestCase `xml:"testcase"`
}

// TestCase is a JUnit testcase element, one per badly formatted file.
type TestCase struct {
	Name    string  `xml:"name,attr"`
	Failure Failure `xml:"failure"`
}

// Failure carries the clang-format diagnostic for a file.
type Failure struct {
	Text string `xml:",cdata"`
}

// BuildReport converts violation records into a JUnit suite.
func BuildReport(records []types.ViolationRecord) *TestSuite {
	suite := &TestSuite{
		Errors:    0,
		Failures:  len(records),
		Name:      SuiteName,
		Tests:     len(records),
		TestCases: make([]TestCase, 0, len(records)),
	}
	for _, r := range records {
		suite.TestCases = append(suite.TestCases, TestCase{
			Name:    r.FileName,
			Failure: Failure{Text: r.ErrorInfo},
		})
	}
	return suite
}

// Encode writes the suite as a UTF-8 XML document.
func (s *TestSuite) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode JUnit report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteReport replaces whatever is at path with the encoded suite.
func WriteReport(path string, suite *TestSuite) error {
	if err := RemoveStale(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := suite.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// RemoveStale deletes a report left by a previous run.
func RemoveStale(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale report %s: %w", path, err)
	}
	return nil
}

// Summary returns a one-line description of the suite counts.
func (s *TestSuite) Summary() string {
	return fmt.Sprintf("%s: %d of %d file(s) failed", s.Name, s.Failures, s.Tests)
}
