// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const infinity = "∞"

// FormatMinutes formats a minute total with comma separators and at most
// three fraction digits.
// e.g., 1350000 -> "1,350,000", 49.5 -> "49.5", 9.000000000000002 -> "9"
func FormatMinutes(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return infinity
	case math.IsInf(v, -1):
		return "-" + infinity
	}

	// Beyond 1e15 a float64 has no fraction digits left to round.
	if math.Abs(v) < 1e15 {
		v = math.Round(v*1000) / 1000
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return humanize.Commaf(v)
}

// FormatCost formats a USD cost with exactly two decimals. Exact half-cent
// values round up, judged on the float's exact binary value.
// e.g., 30 -> "$30.00", 28.125 -> "$28.13", 1.005 -> "$1.00"
func FormatCost(cost float64) string {
	switch {
	case math.IsNaN(cost):
		return "$NaN"
	case math.IsInf(cost, 1):
		return "$" + infinity
	case math.IsInf(cost, -1):
		return "-$" + infinity
	}
	exact := new(big.Rat).SetFloat64(cost)
	return "$" + decimal.NewFromBigRat(exact, 2).StringFixed(2)
}

// FormatRate formats a per-minute price using the shortest exact decimal.
// e.g., 0.1 -> "$0.1", 0.025 -> "$0.025"
func FormatRate(rate float64) string {
	return "$" + strconv.FormatFloat(rate, 'f', -1, 64)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
