package cmd

import (
	"fmt"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/tui"
	"github.com/theirongolddev/callcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		// The calculator still works on defaults; the error is logged below.
		cfg = config.DefaultConfig()
	}
	cfg, err := applyFlags(cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("config unusable, using defaults", zap.String("path", config.Path()), zap.Error(cfgErr))
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:    cfg,
		NeedSetup: !config.Exists(),
		Logger:    logger,
	})

	logger.Info("starting calculator",
		zap.String("theme", cfg.Appearance.Theme),
		zap.Float64("cost_per_minute", cfg.Rates().CostPerMinute))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
