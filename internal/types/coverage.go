// Package types provides type definitions for the records passed between the report converters.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CoverageSample holds the coverage percentages extracted from one summary report.
type CoverageSample struct {
	Lines     float64 `json:"lines"`
	Functions float64 `json:"functions"`
}

// ZeroSample is substituted when a summary report cannot be read.
var ZeroSample = CoverageSample{}

// Trend describes how a metric moved between baseline and current.
type Trend string

const (
	TrendDecreased Trend = "decreased"
	TrendUnchanged Trend = "unchanged"
	TrendImproved  Trend = "improved"
)

// TrendOf classifies the change from baseline to current.
func TrendOf(baseline, current float64) Trend {
	switch {
	case current < baseline:
		return TrendDecreased
	case current == baseline:
		return TrendUnchanged
	default:
		return TrendImproved
	}
}

// MetricComparison is the comparison of a single coverage metric.
type MetricComparison struct {
	Metric   string  `json:"metric"`
	Baseline float64 `json:"baseline"`
	Current  float64 `json:"current"`
	Trend    Trend   `json:"trend"`
}

// CoverageComparison is the result of comparing a baseline sample with a current one.
type CoverageComparison struct {
	Lines     MetricComparison `json:"lines"`
	Functions MetricComparison `json:"functions"`
}

// Regressed reports whether either metric decreased.
func (c CoverageComparison) Regressed() bool {
	return c.Lines.Trend == TrendDecreased || c.Functions.Trend == TrendDecreased
}
