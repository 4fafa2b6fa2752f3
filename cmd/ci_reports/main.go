// Package main provides the ci_reports CLI, which converts build tool output into
// reports consumed by CI.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/ci-reports/internal/config"
	"github.com/jonathan/ci-reports/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg     *config.Config
	logger  = zap.NewNop()
	printer = observability.NewPrinter(os.Stdout, false)
)

var (
	rootLogLevel string
	rootVerbose  bool
	rootNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "ci_reports",
	Short: "Convert build tool output into CI reports",
	Long: "ci_reports post-processes clang-format logs, lcov coverage summaries and valgrind XML reports " +
		"into JUnit XML, plain-text comparisons and CSV summaries.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		merged := loaded.Override(config.Config{LogLevel: rootLogLevel, NoColor: rootNoColor})
		if rootVerbose {
			merged.LogLevel = "debug"
		}
		if err := merged.Validate(); err != nil {
			return err
		}
		cfg = &merged

		logger, err = observability.NewLogger(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}
		printer = observability.NewPrinter(cmd.OutOrStdout(), cfg.NoColor)
		logger.Debug("configuration loaded", zap.Any("config", cfg))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn or error (default from CI_REPORTS_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
