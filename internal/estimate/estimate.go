// Package estimate computes monthly AI agent cost estimates from call volume
// and call duration.
package estimate

import (
	"errors"
	"fmt"
	"strconv"
)

// Defaults used when no pricing override is configured.
const (
	DefaultCostPerMinute = 0.1
	DefaultDaysPerMonth  = 30
)

// ErrInvalidAmount is returned by ParseStrict for values the sanitizer would reject.
var ErrInvalidAmount = errors.New("must be a non-negative decimal number")

// Rates holds the constants of the cost formula.
type Rates struct {
	CostPerMinute float64
	DaysPerMonth  int
}

// DefaultRates is the fixed pricing of the calculator.
var DefaultRates = Rates{
	CostPerMinute: DefaultCostPerMinute,
	DaysPerMonth:  DefaultDaysPerMonth,
}

// Estimate is the derived monthly figure for one pair of inputs.
type Estimate struct {
	CallsPerDay   float64 `json:"calls_per_day"`
	CallDuration  float64 `json:"call_duration_min"`
	DaysPerMonth  int     `json:"days_per_month"`
	TotalMinutes  float64 `json:"total_minutes"`
	CostPerMinute float64 `json:"cost_per_minute"`
	TotalCost     float64 `json:"total_cost"`
}

// ParseAmount converts an input value to a number. Empty, partial ("."),
// and malformed values count as zero. Digit strings too large for a float64
// overflow to +Inf.
func ParseAmount(s string) float64 {
	if s == "" || !Accept(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// ParseStrict is ParseAmount for callers that want rejected values reported
// instead of silently counted as zero.
func ParseStrict(s string) (float64, error) {
	if !Accept(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	return ParseAmount(s), nil
}

// Calculate estimates the monthly cost with DefaultRates.
func Calculate(callsPerDay, callDuration string) Estimate {
	return DefaultRates.Calculate(callsPerDay, callDuration)
}

// Calculate estimates the monthly cost of callsPerDay calls lasting
// callDuration minutes each.
func (r Rates) Calculate(callsPerDay, callDuration string) Estimate {
	calls := ParseAmount(callsPerDay)
	duration := ParseAmount(callDuration)

	totalMinutes := calls * duration * float64(r.DaysPerMonth)

	return Estimate{
		CallsPerDay:   calls,
		CallDuration:  duration,
		DaysPerMonth:  r.DaysPerMonth,
		TotalMinutes:  totalMinutes,
		CostPerMinute: r.CostPerMinute,
		TotalCost:     totalMinutes * r.CostPerMinute,
	}
}

// BudgetUsed returns the fraction of a monthly budget the estimate consumes.
// A non-positive budget means no budget and yields 0.
func (e Estimate) BudgetUsed(budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return e.TotalCost / budget
}
