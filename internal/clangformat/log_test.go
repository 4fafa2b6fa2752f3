package clangformat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoViolationLog = `src/a.cpp:10:5: error: code should be clang-formatted [-Wclang-format-violations]
    int  x = 1;
src/b.cpp:3:1: error: code should be clang-formatted [-Wclang-format-violations]
void f( ) {}
`

func TestIsHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"violation header", "a.cpp:1:1: error: code should be clang-formatted [-Wclang-format-violations]", true},
		{"other error", "a.cpp:1:1: error: unknown type name", false},
		{"tag without error", "note [-Wclang-format-violations]", false},
		{"detail line", "    ^", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeader(tt.line))
		})
	}
}

func TestParseLog_GroupsDetailsUnderHeader(t *testing.T) {
	records, err := ParseLog(strings.NewReader(twoViolationLog))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "src/a.cpp:10:5", records[0].FileName)
	assert.Equal(t, "    int  x = 1;\n", records[0].ErrorInfo)
	assert.Equal(t, "src/b.cpp:3:1", records[1].FileName)
	assert.Equal(t, "void f( ) {}\n", records[1].ErrorInfo)
}

func TestParseLog_MultiLineDetailAndNoTrailingNewline(t *testing.T) {
	log := "x.h:1:1: error: code should be clang-formatted [-Wclang-format-violations]\n" +
		"#include<a>\n" +
		"^\n" +
		"last"

	records, err := ParseLog(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "#include<a>\n^\nlast", records[0].ErrorInfo)
}

func TestParseLog_CRLFLineEndings(t *testing.T) {
	log := "a.cpp:1:1: error: code should be clang-formatted [-Wclang-format-violations]\r\n" +
		"int  x;\r\n" +
		"^\r\n"

	records, err := ParseLog(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a.cpp:1:1", records[0].FileName)
	assert.Equal(t, "int  x;\n^\n", records[0].ErrorInfo)
}

func TestHasLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clang-format_errors.log")

	found, err := HasLog(path)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	found, err = HasLog(path)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(path, []byte(twoViolationLog), 0644))
	found, err = HasLog(path)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = HasLog(dir)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestParseLog_HeaderWithoutDetails(t *testing.T) {
	log := "x.h:1:1: error: code should be clang-formatted [-Wclang-format-violations]\n"

	records, err := ParseLog(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].ErrorInfo)
}

func TestParseLog_DetailBeforeHeader(t *testing.T) {
	log := "stray line\n" + twoViolationLog

	records, err := ParseLog(strings.NewReader(log))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrDetailBeforeHeader))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseLogFile_MissingFile(t *testing.T) {
	records, found, err := ParseLogFile(filepath.Join(t.TempDir(), "clang-format_errors.log"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestParseLogFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clang-format_errors.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	records, found, err := ParseLogFile(path)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, records)
}

func TestParseLogFile_WithViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clang-format_errors.log")
	require.NoError(t, os.WriteFile(path, []byte(twoViolationLog), 0644))

	records, found, err := ParseLogFile(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, records, 2)
}
