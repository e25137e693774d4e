package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"
	"github.com/theirongolddev/callcost/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(Options{Config: config.DefaultConfig()})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func press(t *testing.T, a App, msgs ...tea.KeyMsg) App {
	t.Helper()
	var m tea.Model = a
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(App)
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return press(t, a, keys...)
}

func assertField(t *testing.T, a App, f estimate.Field, want string) {
	t.Helper()
	if got := a.inputs.Get(f); got != want {
		t.Errorf("%s state = %q, want %q", f, got, want)
	}
	if got := a.fields[f].Value(); got != want {
		t.Errorf("%s textinput = %q, want %q", f, got, want)
	}
}

func TestTypingRejectsInvalidKeystrokes(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "-5a")
	assertField(t, a, estimate.CallsPerDay, "5")

	a = typeText(t, a, "..2.")
	assertField(t, a, estimate.CallsPerDay, "5.2")
}

func TestRejectedKeystrokeRestoresCursor(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "12")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	a = typeText(t, a, ".")
	assertField(t, a, estimate.CallsPerDay, "1.2")

	// Second dot is rejected; the cursor must stay after "1.".
	a = typeText(t, a, ".5")
	assertField(t, a, estimate.CallsPerDay, "1.52")
}

func TestBackspaceAndReset(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "42")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	assertField(t, a, estimate.CallsPerDay, "4")

	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "3")
	assertField(t, a, estimate.CallDuration, "3")

	a = press(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	assertField(t, a, estimate.CallsPerDay, "")
	assertField(t, a, estimate.CallDuration, "")
	if a.focus != estimate.CallsPerDay {
		t.Errorf("focus after reset = %s, want %s", a.focus, estimate.CallsPerDay)
	}
}

func TestFocusMovesBetweenFields(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != estimate.CallDuration {
		t.Fatalf("focus after tab = %s, want %s", a.focus, estimate.CallDuration)
	}
	if a.fields[estimate.CallsPerDay].Focused() {
		t.Error("calls field still focused after tab")
	}

	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != estimate.CallsPerDay {
		t.Fatalf("focus after shift+tab = %s, want %s", a.focus, estimate.CallsPerDay)
	}
}

func TestEstimateAndView(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "5")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "2")

	est := a.Estimate()
	if est.TotalMinutes != 300 {
		t.Errorf("TotalMinutes = %v, want 300", est.TotalMinutes)
	}

	view := a.View()
	for _, want := range []string{
		"AI Agent Cost Calculator",
		"Daily Call Volume",
		"Average Call Duration",
		"Total Minutes",
		"300",
		"$0.1",
		"Estimated Monthly Cost",
		"$30.00",
		"Based on 30 days per month",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Used") {
		t.Error("budget bar rendered without a configured budget")
	}
}

func TestViewRoundsHalfCentUp(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "7.5")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "1.25")

	if got := a.Estimate().TotalCost; got != 28.125 {
		t.Fatalf("TotalCost = %v, want 28.125", got)
	}
	view := a.View()
	if !strings.Contains(view, "$28.13") {
		t.Error("view missing $28.13")
	}
	if strings.Contains(view, "$28.12") {
		t.Error("half cent rounded down")
	}
}

func TestViewShowsBudgetWhenConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	budget := 100.0
	cfg.Budget.MonthlyUSD = &budget

	var m tea.Model = NewApp(Options{Config: cfg})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 50})
	a := typeText(t, m.(App), "5")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "2")

	view := a.View()
	for _, want := range []string{"Budget", "30%", "$100.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)

	a = typeText(t, a, "?")
	if !a.showHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}
	assertField(t, a, estimate.CallsPerDay, "")

	a = typeText(t, a, "7")
	if a.showHelp {
		t.Fatal("any key should close help")
	}
	assertField(t, a, estimate.CallsPerDay, "")
}

func TestEscQuits(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}

func TestViewTooNarrow(t *testing.T) {
	var m tea.Model = NewApp(Options{Config: config.DefaultConfig()})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "Terminal too narrow") {
		t.Error("narrow terminal should show a notice")
	}
}

func TestCustomRateFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	rate := 0.5
	cfg.Pricing.CostPerMinute = &rate

	a := NewApp(Options{Config: cfg})
	a = typeText(t, a, "10")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = typeText(t, a, "2")

	if got := a.Estimate().TotalCost; got != 300 {
		t.Errorf("TotalCost = %v, want 300", got)
	}
}

func TestValidateSetupInputs(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		in      string
		wantErr error
	}{
		{"rate empty", validateRate, "", nil},
		{"rate ok", validateRate, "0.25", nil},
		{"rate zero", validateRate, "0", config.ErrInvalidRate},
		{"rate letters", validateRate, "ten", estimate.ErrInvalidAmount},
		{"budget empty", validateBudget, " ", nil},
		{"budget ok", validateBudget, "500", nil},
		{"budget negative", validateBudget, "-5", estimate.ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn(tc.in)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	if validateBudget("0") == nil {
		t.Error("zero budget accepted")
	}
}

func TestDefaultThemeIsKnown(t *testing.T) {
	if !theme.Valid(config.DefaultTheme) {
		t.Fatalf("config.DefaultTheme %q is not a known theme", config.DefaultTheme)
	}
	if got := newSetupValues(config.DefaultConfig()).Theme; got != config.DefaultTheme {
		t.Errorf("setup theme = %q, want %q", got, config.DefaultTheme)
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := newSetupValues(cfg)
	if v.Theme != "flexoki-dark" || v.Rate != "" || v.Budget != "" {
		t.Fatalf("newSetupValues(defaults) = %+v", *v)
	}

	v.Theme = "tokyo-night"
	v.Rate = "0.2"
	v.Budget = "250"
	v.apply(&cfg)

	if cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", cfg.Appearance.Theme)
	}
	if cfg.Rates().CostPerMinute != 0.2 {
		t.Errorf("CostPerMinute = %v, want 0.2", cfg.Rates().CostPerMinute)
	}
	if cfg.MonthlyBudget() != 250 {
		t.Errorf("MonthlyBudget = %v, want 250", cfg.MonthlyBudget())
	}

	v.Rate = ""
	v.Budget = ""
	v.apply(&cfg)
	if cfg.Pricing.CostPerMinute != nil || cfg.Budget.MonthlyUSD != nil {
		t.Error("empty answers should clear overrides")
	}
}
