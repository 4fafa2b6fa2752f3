// Package types provides type definitions for the records passed between the report converters.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ViolationRecord is one file flagged by clang-format together with the
// diagnostic lines reported for it.
type ViolationRecord struct {
	FileName  string `json:"file_name"`
	ErrorInfo string `json:"error_info"` // Detail lines, verbatim including newlines
}

// AppendDetail appends a raw log line to the record's message body.
func (r *ViolationRecord) AppendDetail(line string) {
	r.ErrorInfo += line
}
