package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/callcost/internal/config"
	"github.com/theirongolddev/callcost/internal/estimate"
)

func TestWriteEstimateJSON(t *testing.T) {
	var buf bytes.Buffer
	est := estimate.Calculate("5", "2")
	if err := writeEstimateJSON(&buf, est, 100); err != nil {
		t.Fatalf("writeEstimateJSON: %v", err)
	}

	var got map[string]float64
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	for key, want := range map[string]float64{
		"calls_per_day":  5,
		"total_minutes":  300,
		"total_cost":     30,
		"monthly_budget": 100,
		"budget_used":    0.3,
	} {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestWriteEstimateJSONOmitsBudget(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEstimateJSON(&buf, estimate.Calculate("1", "1"), 0); err != nil {
		t.Fatalf("writeEstimateJSON: %v", err)
	}
	if strings.Contains(buf.String(), "budget") {
		t.Errorf("budget fields present without a budget:\n%s", buf.String())
	}
}

func TestWriteEstimateJSONNonFinite(t *testing.T) {
	huge := strings.Repeat("9", 400)

	tests := []struct {
		name     string
		calls    string
		duration string
		want     string
	}{
		{"overflow", huge, "1", `"total_cost": "+Inf"`},
		{"infinity times zero", huge, "0", `"total_minutes": "NaN"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			est := estimate.Calculate(tc.calls, tc.duration)
			if err := writeEstimateJSON(&buf, est, 100); err != nil {
				t.Fatalf("writeEstimateJSON: %v", err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Errorf("output missing %s:\n%s", tc.want, buf.String())
			}

			var decoded map[string]any
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
		})
	}
}

func TestWriteEstimateTable(t *testing.T) {
	var buf bytes.Buffer
	writeEstimateTable(&buf, estimate.Calculate("1500", "30"), 100)

	out := buf.String()
	for _, want := range []string{
		"AI Agent Cost Calculator",
		"Based on 30 days per month",
		"1,350,000",
		"$0.1",
		"$135000.00",
		"Budget Used",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunEstimateRejectsInvalidInput(t *testing.T) {
	err := runEstimate(estimateCmd, []string{"-5", "2"})
	if !errors.Is(err, estimate.ErrInvalidAmount) {
		t.Fatalf("error = %v, want ErrInvalidAmount", err)
	}
	if !strings.Contains(err.Error(), "calls per day") {
		t.Errorf("error %q does not name the field", err)
	}

	err = runEstimate(estimateCmd, []string{"5", "2 min"})
	if !errors.Is(err, estimate.ErrInvalidAmount) {
		t.Fatalf("error = %v, want ErrInvalidAmount", err)
	}
}

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() { flagTheme, flagRate, flagLogFile, flagLogLevel = "", "", "", "" })

	flagTheme = "tokyo-night"
	flagRate = "0.25"
	flagLogLevel = "debug"
	cfg, err := applyFlags(config.DefaultConfig())
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Rates().CostPerMinute != 0.25 {
		t.Errorf("CostPerMinute = %v, want 0.25", cfg.Rates().CostPerMinute)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}

	flagRate = "0"
	if _, err := applyFlags(config.DefaultConfig()); !errors.Is(err, config.ErrInvalidRate) {
		t.Errorf("zero rate: error = %v, want ErrInvalidRate", err)
	}

	flagRate = ""
	flagTheme = "solarized"
	if _, err := applyFlags(config.DefaultConfig()); err == nil {
		t.Error("unknown theme accepted")
	}
}
