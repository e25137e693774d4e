// Package tui provides the interactive Bubble Tea cost calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/callcost/internal/cli"
	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"
	"github.com/theirongolddev/callcost/internal/tui/components"
	"github.com/theirongolddev/callcost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	minTerminalWidth = 60
	wideWidth        = 100 // inputs side by side at or above this width
	maxContentWidth  = 120
	minContentHeight = 5
)

// Options configures NewApp.
type Options struct {
	Config    config.Config
	NeedSetup bool // show the first-run setup form before the calculator
	Logger    *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	rates  estimate.Rates
	budget float64
	log    *zap.Logger

	// Calculator state. inputs is the source of truth; fields mirror it
	// and own cursor and rendering.
	inputs estimate.Inputs
	fields [estimate.NumFields]textinput.Model
	focus  estimate.Field

	// UI state
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	saveErr   error
}

// NewApp creates the calculator model.
func NewApp(opts Options) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	a := App{
		cfg:    opts.Config,
		rates:  opts.Config.Rates(),
		budget: opts.Config.MonthlyBudget(),
		log:    log,
		focus:  estimate.CallsPerDay,
	}

	for _, f := range estimate.Fields {
		a.fields[f] = newField(f)
	}
	a.fields[a.focus].Focus()

	if opts.NeedSetup {
		a.setupVals = newSetupValues(opts.Config)
		a.setupForm = newSetupForm(a.setupVals)
	}

	return a
}

func newField(f estimate.Field) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	switch f {
	case estimate.CallsPerDay:
		ti.Placeholder = "Enter number of calls per day"
	case estimate.CallDuration:
		ti.Placeholder = "Enter duration in minutes"
	}
	return ti
}

func fieldHint(f estimate.Field) string {
	switch f {
	case estimate.CallsPerDay:
		return "Average number of AI agent calls per day"
	case estimate.CallDuration:
		return "Typical duration of each AI agent call in minutes"
	}
	return ""
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

// Estimate returns the totals for the current inputs.
func (a App) Estimate() estimate.Estimate {
	return a.inputs.Estimate(a.rates)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Letters never survive the sanitizer, so "?" is free for help.
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "esc":
			return a, tea.Quit
		case "tab", "down", "enter":
			return a.focusField(a.focus.Next())
		case "shift+tab", "up":
			return a.focusField(a.focus.Prev())
		case "ctrl+r":
			return a.reset()
		}
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Keystrokes, pastes and cursor blinks all go to the focused field.
	return a.updateFocusedField(msg)
}

// updateFocusedField lets the focused textinput handle msg, then keeps the
// result only if the sanitizer accepts it.
func (a App) updateFocusedField(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := a.focus
	ti := a.fields[f]
	prevValue, prevPos := ti.Value(), ti.Position()

	ti, cmd := ti.Update(msg)

	if ti.Value() != prevValue {
		next, ok := a.inputs.Set(f, ti.Value())
		if !ok {
			a.log.Debug("input rejected",
				zap.Stringer("field", f),
				zap.String("value", ti.Value()),
				zap.String("kept", prevValue))
			ti.SetValue(prevValue)
			ti.SetCursor(prevPos)
		}
		a.inputs = next
	}

	a.fields[f] = ti
	return a, cmd
}

func (a App) focusField(f estimate.Field) (tea.Model, tea.Cmd) {
	a.fields[a.focus].Blur()
	a.focus = f
	cmd := a.fields[f].Focus()
	return a, cmd
}

func (a App) reset() (tea.Model, tea.Cmd) {
	a.inputs = estimate.Inputs{}
	for i := range a.fields {
		a.fields[i].Reset()
	}
	return a.focusField(estimate.CallsPerDay)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupVals.apply(&a.cfg)
		a.saveErr = config.Save(a.cfg)
		if a.saveErr != nil {
			a.log.Warn("saving setup config failed", zap.Error(a.saveErr))
		} else {
			a.log.Info("setup saved",
				zap.String("theme", a.cfg.Appearance.Theme),
				zap.Float64("cost_per_minute", a.cfg.Rates().CostPerMinute),
				zap.Float64("monthly_budget", a.cfg.MonthlyBudget()))
		}
		theme.SetActive(a.cfg.Appearance.Theme)
		a.rates = a.cfg.Rates()
		a.budget = a.cfg.MonthlyBudget()
		a.setupForm = nil
		return a, textinput.Blink

	case huh.StateAborted:
		a.log.Info("setup skipped")
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  callcost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"0-9 .", "Edit the focused field"},
		{"tab ↓ ⏎", "Next field"},
		{"⇧tab ↑", "Previous field"},
		{"ctrl+r", "Clear both fields"},
		{"?", "Toggle help"},
		{"esc", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	statusBar := components.RenderStatusBar(w, a.statusInfo())

	contentH := h - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content := a.renderCalculator(cw)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusInfo() string {
	info := cli.FormatRate(a.rates.CostPerMinute) + "/min · " + theme.Active.Name
	if a.saveErr != nil {
		info = "config not saved · " + info
	}
	return info
}

// renderCalculator draws the header, both inputs and the cost breakdown.
func (a App) renderCalculator(cw int) string {
	t := theme.Active
	est := a.Estimate()

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Background).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Background).
		Width(cw).
		Align(lipgloss.Center)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Background).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("⚡ AI Agent Cost Calculator"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Estimate your monthly AI agent costs. Enter your daily call volume and average duration."))
	b.WriteString("\n\n")

	b.WriteString(a.renderInputs(cw))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Monthly Cost Breakdown"))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Minutes", Value: cli.FormatMinutes(est.TotalMinutes)},
		{Label: "Cost per Minute", Value: cli.FormatRate(est.CostPerMinute)},
	}, cw))
	b.WriteString("\n")
	b.WriteString(components.HighlightCard(
		"Estimated Monthly Cost",
		cli.FormatCost(est.TotalCost),
		fmt.Sprintf("Based on %d days per month", est.DaysPerMonth),
		cw,
	))

	if a.budget > 0 {
		b.WriteString("\n")
		b.WriteString(a.renderBudget(est, cw))
	}

	return b.String()
}

func (a App) renderInputs(cw int) string {
	if cw >= wideWidth {
		widths := components.LayoutRow(cw, len(a.fields))
		cards := make([]string, len(a.fields))
		for _, f := range estimate.Fields {
			cards[f] = a.renderField(f, widths[f])
		}
		return components.CardRow(cards)
	}

	rows := make([]string, len(a.fields))
	for _, f := range estimate.Fields {
		rows[f] = a.renderField(f, cw)
	}
	return strings.Join(rows, "\n")
}

func (a App) renderField(f estimate.Field, outerWidth int) string {
	t := theme.Active

	ti := a.fields[f]
	ti.Width = components.CardInnerWidth(outerWidth) - lipgloss.Width(ti.Prompt) - 1
	ti.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	ti.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return components.InputField(f.String(), ti.View(), fieldHint(f), f == a.focus, outerWidth)
}

func (a App) renderBudget(est estimate.Estimate, cw int) string {
	t := theme.Active
	used := est.BudgetUsed(a.budget)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 8 - 6
	if barW < 10 {
		barW = 10
	}

	body := components.BudgetBar("Used", used, 7, barW) + "\n" +
		valueStyle.Render(cli.FormatCost(est.TotalCost)) +
		labelStyle.Render(" of ") +
		valueStyle.Render(cli.FormatCost(a.budget)) +
		labelStyle.Render(" monthly budget")

	return components.ContentCard("Budget", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
