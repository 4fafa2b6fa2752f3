package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/ci-reports/internal/config"
	"github.com/jonathan/ci-reports/internal/coverage"
	"github.com/jonathan/ci-reports/internal/observability"
	"github.com/jonathan/ci-reports/internal/schemas"
	"github.com/jonathan/ci-reports/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage <baseline-summary> <current-summary>",
	Short: "Compare line and function coverage against a baseline",
	Long: "Compares two lcov summary reports and writes whether line and function coverage improved, " +
		"decreased or stayed unchanged. A coverage decrease is reported but does not fail the run. " +
		"Exactly two summaries are required; any other number of arguments fails.",
	Args: cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		opts := cfg.Override(config.Config{CoverageOutput: coverageOutput})
		return runCoverage(args, opts.CoverageOutput, coverageJSON, logger, printer)
	},
}

var (
	coverageOutput string
	coverageJSON   string
)

func init() {
	coverageCmd.Flags().StringVarP(&coverageOutput, "out", "o", "", "Path to comparison text output (default from CI_REPORTS_COVERAGE_OUTPUT)")
	coverageCmd.Flags().StringVar(&coverageJSON, "json", "", "Path to JSON comparison summary (optional)")

	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(args []string, outPath, jsonPath string, log *zap.Logger, out *observability.Printer) error {
	if len(args) != 2 {
		if err := coverage.WriteOutput(outPath, coverage.WrongArgumentsMessage); err != nil {
			return err
		}
		return coverage.ErrWrongArgumentCount
	}

	baseline, err := loadSample(args[0], outPath, log)
	if err != nil {
		return err
	}
	current, err := loadSample(args[1], outPath, log)
	if err != nil {
		return err
	}

	cmp := coverage.Compare(baseline, current)
	report := coverage.FormatReport(cmp)
	if err := coverage.WriteOutput(outPath, report); err != nil {
		return err
	}

	out.Infof("Coverage statistics of your commit:")
	out.PrintCoverageLine(cmp.Lines.Trend, coverage.FormatMetric(cmp.Lines))
	out.PrintCoverageLine(cmp.Functions.Trend, coverage.FormatMetric(cmp.Functions))
	if cmp.Regressed() {
		log.Warn("coverage decreased", zap.String("output", outPath))
	}

	if jsonPath != "" {
		return writeComparisonJSON(jsonPath, cmp, log)
	}
	return nil
}

// loadSample parses a summary, substituting zero coverage when it cannot be read.
// The returned error is only set when the warning itself cannot be written.
func loadSample(path, outPath string, log *zap.Logger) (types.CoverageSample, error) {
	sample, err := coverage.ParseSummaryFile(path)
	if err == nil {
		log.Debug("parsed coverage summary", zap.String("path", path),
			zap.Float64("lines", sample.Lines), zap.Float64("functions", sample.Functions))
		return sample, nil
	}

	log.Warn(coverage.UnreadableStatsMessage, zap.String("path", path), zap.Error(err))
	if writeErr := coverage.WriteOutput(outPath, coverage.UnreadableStatsMessage); writeErr != nil {
		return types.ZeroSample, writeErr
	}
	return types.ZeroSample, nil
}

func writeComparisonJSON(path string, cmp types.CoverageComparison, log *zap.Logger) error {
	jsonBytes, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal coverage comparison to JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write coverage comparison JSON: %w", err)
	}

	// Validate output against schema (non-fatal)
	schemaPath := schemas.ResolveSchemaPath(schemas.CoverageComparison)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("coverage comparison does not validate against schema", zap.Error(err))
		} else {
			log.Warn("could not validate coverage comparison against schema", zap.Error(err))
		}
	}
	return nil
}
