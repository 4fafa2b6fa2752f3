package main

import (
	"fmt"

	"github.com/jonathan/ci-reports/internal/clangformat"
	"github.com/jonathan/ci-reports/internal/config"
	"github.com/jonathan/ci-reports/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var clangFormatCmd = &cobra.Command{
	Use:   "clang-format",
	Short: "Convert a clang-format violation log into a JUnit report",
	Long: "Reads the clang-format violation log, groups the diagnostics by file and writes a JUnit XML report. " +
		"Exits with status 1 when any file is badly formatted. A missing or empty log means no violations.",
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		opts := cfg.Override(config.Config{ClangFormatLog: clangFormatLog, ClangFormatXML: clangFormatOutput})
		return runClangFormat(opts.ClangFormatLog, opts.ClangFormatXML, logger, printer)
	},
}

var (
	clangFormatLog    string
	clangFormatOutput string
)

func init() {
	clangFormatCmd.Flags().StringVarP(&clangFormatLog, "log", "l", "", "Path to clang-format violation log (default from CI_REPORTS_CLANG_FORMAT_LOG)")
	clangFormatCmd.Flags().StringVarP(&clangFormatOutput, "out", "o", "", "Path to output JUnit XML (default from CI_REPORTS_CLANG_FORMAT_XML)")

	rootCmd.AddCommand(clangFormatCmd)
}

func runClangFormat(logPath, xmlPath string, log *zap.Logger, out *observability.Printer) error {
	found, err := clangformat.HasLog(logPath)
	if err != nil {
		return fmt.Errorf("failed to process clang-format log: %w", err)
	}
	if !found {
		log.Debug("no clang-format violations", zap.String("log", logPath))
		return nil
	}

	// A malformed log must not leave the previous run's report behind
	if err := clangformat.RemoveStale(xmlPath); err != nil {
		return err
	}

	records, _, err := clangformat.ParseLogFile(logPath)
	if err != nil {
		return fmt.Errorf("failed to process clang-format log: %w", err)
	}

	suite := clangformat.BuildReport(records)
	if err := clangformat.WriteReport(xmlPath, suite); err != nil {
		return err
	}
	log.Info("wrote JUnit report", zap.String("path", xmlPath), zap.Int("failures", suite.Failures))

	out.Failf("%s", suite.Summary())
	return clangformat.ErrViolationsFound
}
