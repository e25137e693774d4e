package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Env and flag overrides are not persisted, so start from the file alone.
	cfg, err := config.LoadFile(config.Path())
	if err != nil {
		return err
	}

	cfg, err = tui.RunSetup(cfg)
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "  Setup cancelled, nothing saved.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n", config.Path())
	fmt.Fprintln(cmd.OutOrStdout(), "  Run `callcost setup` anytime to reconfigure.")
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
