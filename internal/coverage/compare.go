package coverage

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/ci-reports/internal/types"
)

// Messages written to the output file when the comparison cannot run.
const (
	WrongArgumentsMessage  = "Can't compare coverage stats - Wrong number of script arguments"
	UnreadableStatsMessage = "Can't compare coverage stats - Could not open statistics file"
)

const reportHeader = "Coverage statistics of your commit:\n"

// Compare classifies each metric of current against baseline independently.
func Compare(baseline, current types.CoverageSample) types.CoverageComparison {
	return types.CoverageComparison{
		Lines: types.MetricComparison{
			Metric:   "lines",
			Baseline: baseline.Lines,
			Current:  current.Lines,
			Trend:    types.TrendOf(baseline.Lines, current.Lines),
		},
		Functions: types.MetricComparison{
			Metric:   "functions",
			Baseline: baseline.Functions,
			Current:  current.Functions,
			Trend:    types.TrendOf(baseline.Functions, current.Functions),
		},
	}
}

// FormatReport renders the comparison as the text posted back to the commit.
func FormatReport(cmp types.CoverageComparison) string {
	var sb strings.Builder
	sb.WriteString(reportHeader)
	sb.WriteString(FormatMetric(cmp.Lines))
	sb.WriteString(FormatMetric(cmp.Functions))
	return sb.String()
}

// FormatMetric renders the line describing a single metric.
func FormatMetric(m types.MetricComparison) string {
	title := strings.ToUpper(m.Metric[:1]) + m.Metric[1:]
	switch m.Trend {
	case types.TrendDecreased:
		return fmt.Sprintf("WARNING: %s coverage decreased from: %s%% to %s%%\n",
			title, FormatPercent(m.Baseline), FormatPercent(m.Current))
	case types.TrendUnchanged:
		return fmt.Sprintf("%s coverage stays unchanged and is: %s%%\n",
			title, FormatPercent(m.Current))
	default:
		return fmt.Sprintf("Congratulations, your commit improved %s coverage from: %s%% to %s%%\n",
			m.Metric, FormatPercent(m.Baseline), FormatPercent(m.Current))
	}
}

// FormatPercent prints the shortest decimal that round-trips v, always with a
// fractional part: 80 -> "80.0", 72.35 -> "72.35".
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// WriteOutput replaces the content of the comparison output file.
func WriteOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write comparison output: %w", err)
	}
	return nil
}
