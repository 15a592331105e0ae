package output

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable is printed in place of values that overflowed to ±Inf or NaN
const NotAvailable = "n/a"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency formats an amount as dollars with two decimals, e.g. "$61540.00" or "-$12.50"
func FormatCurrency(amount float64) string {
	if !finite(amount) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(amount)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatRate formats an hourly amount, e.g. "$34.97 / hr"
func FormatRate(amount float64) string {
	if !finite(amount) {
		return NotAvailable
	}
	return FormatCurrency(amount) + " / hr"
}

// FormatNumber rounds to two decimals
func FormatNumber(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatHours formats an hour count, e.g. "1760.00 hrs"
func FormatHours(v float64) string {
	return FormatNumber(v) + " hrs"
}

// FormatPercentage formats a percent value, e.g. "17.50%"
func FormatPercentage(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// FormatInput prints an input value without trailing zeros, e.g. "17.5" or "0"
func FormatInput(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).String()
}

// FormatMultiplier returns the markup multiplier 1 + percent/100 to two decimals
func FormatMultiplier(markupPercent float64) string {
	if !finite(markupPercent) {
		return NotAvailable
	}
	return decimal.NewFromInt(1).Add(decimal.NewFromFloat(markupPercent).Div(decimal.NewFromInt(100))).StringFixed(2)
}

// Bar renders a fixed-width text bar for a 0-100 share
func Bar(share float64, width int) string {
	if width <= 0 {
		return ""
	}
	if !finite(share) {
		share = 0
	}
	share = max(0, min(100, share))
	filled := int(decimal.NewFromFloat(share).Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
