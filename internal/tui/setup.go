package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"
	"github.com/theirongolddev/callcost/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues are bound to the huh form fields.
type setupValues struct {
	Theme  string
	Rate   string
	Budget string
}

func newSetupValues(cfg config.Config) *setupValues {
	v := &setupValues{Theme: cfg.Appearance.Theme}
	if !theme.Valid(v.Theme) {
		v.Theme = theme.FlexokiDark.Name
	}
	if cfg.Pricing.CostPerMinute != nil {
		v.Rate = strconv.FormatFloat(*cfg.Pricing.CostPerMinute, 'f', -1, 64)
	}
	if cfg.Budget.MonthlyUSD != nil {
		v.Budget = strconv.FormatFloat(*cfg.Budget.MonthlyUSD, 'f', -1, 64)
	}
	return v
}

func newSetupForm(v *setupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to callcost").
				Description("A few settings, saved to "+config.Path()+".\nRun `callcost setup` anytime to change them."),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&v.Theme),

			huh.NewInput().
				Title("Cost per minute (USD)").
				Description(fmt.Sprintf("Leave empty for the default of %s.", strconv.FormatFloat(estimate.DefaultCostPerMinute, 'f', -1, 64))).
				Placeholder(strconv.FormatFloat(estimate.DefaultCostPerMinute, 'f', -1, 64)).
				Value(&v.Rate).
				Validate(validateRate),

			huh.NewInput().
				Title("Monthly budget (USD)").
				Description("Optional. Shows how much of it the estimate uses.").
				Placeholder("500").
				Value(&v.Budget).
				Validate(validateBudget),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(true)
}

func validateRate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := estimate.ParseStrict(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return config.ErrInvalidRate
	}
	return nil
}

func validateBudget(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := estimate.ParseStrict(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return errors.New("budget must be greater than zero")
	}
	return nil
}

// apply copies the form answers into cfg. Empty answers clear overrides.
func (v *setupValues) apply(cfg *config.Config) {
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}

	cfg.Pricing.CostPerMinute = nil
	if rate := estimate.ParseAmount(strings.TrimSpace(v.Rate)); rate > 0 {
		cfg.Pricing.CostPerMinute = &rate
	}

	cfg.Budget.MonthlyUSD = nil
	if budget := estimate.ParseAmount(strings.TrimSpace(v.Budget)); budget > 0 {
		cfg.Budget.MonthlyUSD = &budget
	}
}

// RunSetup runs the setup form on its own and returns the updated config.
// The config is not saved; aborting returns huh.ErrUserAborted.
func RunSetup(cfg config.Config) (config.Config, error) {
	v := newSetupValues(cfg)
	if err := newSetupForm(v).Run(); err != nil {
		return cfg, err
	}
	v.apply(&cfg)
	return cfg, nil
}
