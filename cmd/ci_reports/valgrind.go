package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/ci-reports/internal/config"
	"github.com/jonathan/ci-reports/internal/observability"
	"github.com/jonathan/ci-reports/internal/valgrind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var valgrindCmd = &cobra.Command{
	Use:   "valgrind",
	Short: "Summarize valgrind XML reports into a CSV matrix",
	Long: "Scans the build directory for *_valgrind_report.xml files and writes one CSV row per test suite " +
		"with at least one memory error, counting errors per kind. Still-reachable leaks are ignored.",
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := cfg.Override(config.Config{ValgrindDir: valgrindDir, ValgrindCSV: valgrindOutput})
		return runValgrind(opts.ValgrindDir, opts.ValgrindCSV, logger, printer)
	},
}

var (
	valgrindDir    string
	valgrindOutput string
)

func init() {
	valgrindCmd.Flags().StringVarP(&valgrindDir, "dir", "d", "", "Directory holding valgrind reports (default from CI_REPORTS_VALGRIND_DIR)")
	valgrindCmd.Flags().StringVarP(&valgrindOutput, "out", "o", "", "Path to output CSV (default from CI_REPORTS_VALGRIND_CSV)")

	rootCmd.AddCommand(valgrindCmd)
}

func runValgrind(dir, csvPath string, log *zap.Logger, out *observability.Printer) error {
	if err := os.Remove(csvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale summary %s: %w", csvPath, err)
	}
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvPath, err)
	}
	defer func() { _ = file.Close() }()

	w, err := valgrind.NewWriter(file)
	if err != nil {
		return err
	}

	tallies, summarizeErr := valgrind.Summarize(dir, log)
	for _, t := range tallies {
		if err := w.WriteTally(t); err != nil {
			return err
		}
	}
	if summarizeErr != nil {
		return summarizeErr
	}

	out.PrintSuiteTallies(tallies)
	log.Info("wrote valgrind summary", zap.String("path", csvPath), zap.Int("suites", len(tallies)))
	return file.Close()
}
