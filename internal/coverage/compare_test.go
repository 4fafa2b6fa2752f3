package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ci-reports/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{80, "80.0"},
		{0, "0.0"},
		{72.35, "72.35"},
		{100, "100.0"},
		{66.7, "66.7"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(tt.in))
		})
	}
}

func TestFormatReport_ImprovedLinesDecreasedFunctions(t *testing.T) {
	baseline := types.CoverageSample{Lines: 80.0, Functions: 70.0}
	current := types.CoverageSample{Lines: 85.0, Functions: 65.0}

	report := FormatReport(Compare(baseline, current))

	assert.Equal(t, "Coverage statistics of your commit:\n"+
		"Congratulations, your commit improved lines coverage from: 80.0% to 85.0%\n"+
		"WARNING: Functions coverage decreased from: 70.0% to 65.0%\n", report)
}

func TestFormatReport_Unchanged(t *testing.T) {
	sample := types.CoverageSample{Lines: 91.2, Functions: 88.0}

	report := FormatReport(Compare(sample, sample))

	assert.Equal(t, "Coverage statistics of your commit:\n"+
		"Lines coverage stays unchanged and is: 91.2%\n"+
		"Functions coverage stays unchanged and is: 88.0%\n", report)
}

func TestFormatReport_DecreasedLinesImprovedFunctions(t *testing.T) {
	baseline := types.CoverageSample{Lines: 50.5, Functions: 10.0}
	current := types.CoverageSample{Lines: 50.25, Functions: 12.0}

	report := FormatReport(Compare(baseline, current))

	assert.Contains(t, report, "WARNING: Lines coverage decreased from: 50.5% to 50.25%\n")
	assert.Contains(t, report, "Congratulations, your commit improved functions coverage from: 10.0% to 12.0%\n")
}

func TestCompare_MetricsAreIndependent(t *testing.T) {
	cmp := Compare(types.CoverageSample{Lines: 1, Functions: 1}, types.CoverageSample{Lines: 2, Functions: 1})
	assert.Equal(t, types.TrendImproved, cmp.Lines.Trend)
	assert.Equal(t, types.TrendUnchanged, cmp.Functions.Trend)
	assert.False(t, cmp.Regressed())
}

func TestWriteOutput_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison_output.txt")
	require.NoError(t, WriteOutput(path, UnreadableStatsMessage))
	require.NoError(t, WriteOutput(path, "short"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(content))
}
