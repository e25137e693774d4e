package cmd

import (
	"fmt"

	"github.com/theirongolddev/callcost/internal/cli"
	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Pricing]")
	rates := cfg.Rates()
	source := "default"
	if cfg.Pricing.CostPerMinute != nil {
		source = "override"
	}
	fmt.Fprintf(w, "    Cost per minute: %s (%s)\n", cli.FormatRate(rates.CostPerMinute), source)
	fmt.Fprintf(w, "    Days per month:  %d\n", estimate.DefaultDaysPerMonth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Budget]")
	if budget := cfg.MonthlyBudget(); budget > 0 {
		fmt.Fprintf(w, "    Monthly budget: %s\n", cli.FormatCost(budget))
	} else {
		fmt.Fprintln(w, "    Monthly budget: not set")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Log]")
	if cfg.Log.File != "" {
		fmt.Fprintf(w, "    File:  %s\n", cfg.Log.File)
		fmt.Fprintf(w, "    Level: %s\n", cfg.Log.Level)
	} else {
		fmt.Fprintln(w, "    File: disabled")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  Run `callcost setup` to reconfigure.")
	return nil
}
