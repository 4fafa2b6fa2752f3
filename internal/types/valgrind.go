// Package types provides type definitions for the records passed between the report converters.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Valgrind error kinds counted in the summary, in column order.
const (
	KindPossiblyLost   = "Leak_PossiblyLost"
	KindIndirectlyLost = "Leak_IndirectlyLost"
	KindDefinitelyLost = "Leak_DefinitelyLost"
	KindUninitCond     = "UninitCondition"
	KindInvalidWrite   = "InvalidWrite"
	KindInvalidRead    = "InvalidRead"
	KindUnknown        = "UnknownError"

	// KindStillReachable accounts for static and global objects and is never counted.
	KindStillReachable = "Leak_StillReachable"
)

// ErrorKinds lists the counted kinds in the order of the ErrorTally slots.
// The last entry doubles as the bucket for unrecognized kinds.
var ErrorKinds = [...]string{
	KindPossiblyLost,
	KindIndirectlyLost,
	KindDefinitelyLost,
	KindUninitCond,
	KindInvalidWrite,
	KindInvalidRead,
	KindUnknown,
}

// ErrorTally counts errors per kind, indexed like ErrorKinds.
type ErrorTally [len(ErrorKinds)]int

// Total returns the sum of all counters.
func (t ErrorTally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// SuiteTally is the tally of one test suite's valgrind report.
type SuiteTally struct {
	Suite  string     `json:"suite"`
	Counts ErrorTally `json:"counts"`
}
