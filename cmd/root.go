// Package cmd implements the callcost CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"
	"github.com/theirongolddev/callcost/internal/logging"
	"github.com/theirongolddev/callcost/internal/tui/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagTheme    string
	flagRate     string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "callcost",
	Short:         "AI agent cost calculator",
	Long:          "Estimate monthly AI agent costs from daily call volume and average call duration.",
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
	rootCmd.PersistentFlags().StringVar(&flagRate, "rate", "", "Cost per minute in USD (default 0.1)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig loads the config file and environment, then applies flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return applyFlags(cfg)
}

func applyFlags(cfg config.Config) (config.Config, error) {
	if flagTheme != "" {
		if !theme.Valid(flagTheme) {
			return cfg, fmt.Errorf("unknown theme %q", flagTheme)
		}
		cfg.Appearance.Theme = flagTheme
	}

	if flagRate != "" {
		rate, err := estimate.ParseStrict(flagRate)
		if err != nil {
			return cfg, fmt.Errorf("--rate: %w", err)
		}
		if rate <= 0 {
			return cfg, fmt.Errorf("--rate: %w", config.ErrInvalidRate)
		}
		cfg.Pricing.CostPerMinute = &rate
	}

	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return logger, nil
}
