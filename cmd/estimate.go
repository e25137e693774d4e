package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/theirongolddev/callcost/internal/cli"
	"github.com/theirongolddev/callcost/internal/estimate"

	"github.com/spf13/cobra"
)

var (
	flagCalls    string
	flagDuration string
	flagJSON     bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [calls-per-day] [minutes-per-call]",
	Short: "Print a monthly cost estimate without the TUI",
	Example: `  callcost estimate 500 3
  callcost estimate --calls 1200 --duration 2.5 --json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&flagCalls, "calls", "", "Daily call volume")
	estimateCmd.Flags().StringVar(&flagDuration, "duration", "", "Average call duration in minutes")
	estimateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the estimate as JSON")
	rootCmd.AddCommand(estimateCmd)
}

// estimateReport is the JSON form of an estimate.
type estimateReport struct {
	CallsPerDay   jsonFloat  `json:"calls_per_day"`
	CallDuration  jsonFloat  `json:"call_duration_min"`
	DaysPerMonth  int        `json:"days_per_month"`
	TotalMinutes  jsonFloat  `json:"total_minutes"`
	CostPerMinute jsonFloat  `json:"cost_per_minute"`
	TotalCost     jsonFloat  `json:"total_cost"`
	MonthlyBudget *jsonFloat `json:"monthly_budget,omitempty"`
	BudgetUsed    *jsonFloat `json:"budget_used,omitempty"`
}

// jsonFloat encodes +Inf, -Inf and NaN as the strings "+Inf", "-Inf" and
// "NaN", which plain JSON numbers cannot carry.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	calls, duration := flagCalls, flagDuration
	if len(args) > 0 {
		calls = args[0]
	}
	if len(args) > 1 {
		duration = args[1]
	}

	if _, err := estimate.ParseStrict(calls); err != nil {
		return fmt.Errorf("invalid calls per day: %w", err)
	}
	if _, err := estimate.ParseStrict(duration); err != nil {
		return fmt.Errorf("invalid call duration: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	est := cfg.Rates().Calculate(calls, duration)
	budget := cfg.MonthlyBudget()

	if flagJSON {
		return writeEstimateJSON(cmd.OutOrStdout(), est, budget)
	}
	writeEstimateTable(cmd.OutOrStdout(), est, budget)
	return nil
}

func writeEstimateJSON(w io.Writer, est estimate.Estimate, budget float64) error {
	report := estimateReport{
		CallsPerDay:   jsonFloat(est.CallsPerDay),
		CallDuration:  jsonFloat(est.CallDuration),
		DaysPerMonth:  est.DaysPerMonth,
		TotalMinutes:  jsonFloat(est.TotalMinutes),
		CostPerMinute: jsonFloat(est.CostPerMinute),
		TotalCost:     jsonFloat(est.TotalCost),
	}
	if budget > 0 {
		b, used := jsonFloat(budget), jsonFloat(est.BudgetUsed(budget))
		report.MonthlyBudget = &b
		report.BudgetUsed = &used
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding estimate: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeEstimateTable(w io.Writer, est estimate.Estimate, budget float64) {
	rows := [][]string{
		{"Daily Call Volume", cli.FormatMinutes(est.CallsPerDay)},
		{"Average Call Duration", cli.FormatMinutes(est.CallDuration) + " min"},
		{"---"},
		{"Total Minutes", cli.FormatMinutes(est.TotalMinutes)},
		{"Cost per Minute", cli.FormatRate(est.CostPerMinute)},
		{"Estimated Monthly Cost", cli.FormatCost(est.TotalCost)},
	}
	if budget > 0 {
		rows = append(rows,
			[]string{"---"},
			[]string{"Monthly Budget", cli.FormatCost(budget)},
			[]string{"Budget Used", cli.FormatPercent(est.BudgetUsed(budget))},
		)
	}

	fmt.Fprintln(w, cli.RenderTitle("AI Agent Cost Calculator"))
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title: fmt.Sprintf("Based on %d days per month", est.DaysPerMonth),
		Rows:  rows,
	}))
}
