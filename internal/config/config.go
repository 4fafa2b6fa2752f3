// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the file locations and logging settings shared by all subcommands.
// Every field has a default matching the conventional CI layout; CLI flags take
// precedence over the environment.
type Config struct {
	// clang-format
	ClangFormatLog string `env:"CI_REPORTS_CLANG_FORMAT_LOG" env-default:"clang-format_errors.log" validate:"required"`
	ClangFormatXML string `env:"CI_REPORTS_CLANG_FORMAT_XML" env-default:"clang-format_errors.xml" validate:"required"`

	// coverage
	CoverageOutput string `env:"CI_REPORTS_COVERAGE_OUTPUT" env-default:"comparison_output.txt" validate:"required"`

	// valgrind
	ValgrindDir string `env:"CI_REPORTS_VALGRIND_DIR" env-default:"build" validate:"required"`
	ValgrindCSV string `env:"CI_REPORTS_VALGRIND_CSV" env-default:"valgrind_report.csv" validate:"required"`

	// Behavior
	LogLevel string `env:"CI_REPORTS_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	NoColor  bool   `env:"CI_REPORTS_NO_COLOR" env-default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Override returns a copy of the config with every non-empty value of flags applied.
// This is used to let CLI flags win over environment values.
func (c *Config) Override(flags Config) Config {
	result := *c

	if flags.ClangFormatLog != "" {
		result.ClangFormatLog = flags.ClangFormatLog
	}
	if flags.ClangFormatXML != "" {
		result.ClangFormatXML = flags.ClangFormatXML
	}
	if flags.CoverageOutput != "" {
		result.CoverageOutput = flags.CoverageOutput
	}
	if flags.ValgrindDir != "" {
		result.ValgrindDir = flags.ValgrindDir
	}
	if flags.ValgrindCSV != "" {
		result.ValgrindCSV = flags.ValgrindCSV
	}
	if flags.LogLevel != "" {
		result.LogLevel = flags.LogLevel
	}

	// Bool flags can only switch behavior on
	if flags.NoColor {
		result.NoColor = true
	}

	return result
}
