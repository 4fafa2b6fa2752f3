package main

import (
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/ci-reports/internal/clangformat"
	"github.com/jonathan/ci-reports/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const violationLog = `src/a.cpp:10:5: error: code should be clang-formatted [-Wclang-format-violations]
    int  x = 1;
src/b.cpp:3:1: error: code should be clang-formatted [-Wclang-format-violations]
void f( ) {}
`

func TestRunClangFormat_TwoViolations(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "clang-format_errors.log")
	xmlPath := filepath.Join(tmpDir, "clang-format_errors.xml")
	require.NoError(t, os.WriteFile(logPath, []byte(violationLog), 0644))

	var out bytes.Buffer
	err := runClangFormat(logPath, xmlPath, zap.NewNop(), observability.NewPrinter(&out, true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, clangformat.ErrViolationsFound))
	assert.Contains(t, out.String(), "2 of 2 file(s) failed")

	content, err := os.ReadFile(xmlPath)
	require.NoError(t, err)

	var suite clangformat.TestSuite
	require.NoError(t, xml.Unmarshal(content, &suite))
	assert.Equal(t, 2, suite.Failures)
	assert.Equal(t, 2, suite.Tests)
	assert.Len(t, suite.TestCases, 2)
}

func TestRunClangFormat_NoLog(t *testing.T) {
	tmpDir := t.TempDir()
	xmlPath := filepath.Join(tmpDir, "clang-format_errors.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte("previous"), 0644))

	err := runClangFormat(filepath.Join(tmpDir, "clang-format_errors.log"), xmlPath, zap.NewNop(), observability.NewPrinter(&bytes.Buffer{}, true))
	require.NoError(t, err)

	content, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(content), "existing report must be left untouched")
}

func TestRunClangFormat_EmptyLog(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "clang-format_errors.log")
	xmlPath := filepath.Join(tmpDir, "clang-format_errors.xml")
	require.NoError(t, os.WriteFile(logPath, nil, 0644))

	err := runClangFormat(logPath, xmlPath, zap.NewNop(), observability.NewPrinter(&bytes.Buffer{}, true))
	require.NoError(t, err)

	_, err = os.Stat(xmlPath)
	assert.True(t, os.IsNotExist(err), "no report should be created")
}

func TestRunClangFormat_DetailBeforeHeader(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "clang-format_errors.log")
	xmlPath := filepath.Join(tmpDir, "clang-format_errors.xml")
	require.NoError(t, os.WriteFile(logPath, []byte("orphan\n"+violationLog), 0644))
	require.NoError(t, os.WriteFile(xmlPath, []byte("<testsuite/>"), 0644))

	err := runClangFormat(logPath, xmlPath, zap.NewNop(), observability.NewPrinter(&bytes.Buffer{}, true))
	require.Error(t, err)
	assert.True(t, errors.Is(err, clangformat.ErrDetailBeforeHeader))

	_, statErr := os.Stat(xmlPath)
	assert.True(t, os.IsNotExist(statErr), "report from the previous run must be removed")
}

func TestClangFormatCommand_ExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "clang-format_errors.log"), []byte(violationLog), 0644))

	cmd := exec.Command(binaryPath, "clang-format", "--no-color")
	cmd.Dir = tmpDir
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Failure detected, code has not been correctly formatted")
	_, statErr := os.Stat(filepath.Join(tmpDir, "clang-format_errors.xml"))
	assert.NoError(t, statErr)
}

func TestClangFormatCommand_NoViolations(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "clang-format")
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
}
