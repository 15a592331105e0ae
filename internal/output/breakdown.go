package output

import (
	"strings"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// Slice is one segment of a breakdown chart
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Share float64 `json:"share"` // percent of the breakdown total
}

// Breakdown groups results into the three charts shown on the final step
type Breakdown struct {
	Labour    []Slice `json:"labour"`
	Overheads []Slice `json:"overheads"`
	Rate      []Slice `json:"rate"`
}

// NewBreakdown builds all three charts
func NewBreakdown(state domain.CalculatorState, r domain.CalculationResults) Breakdown {
	return Breakdown{
		Labour:    LabourBreakdown(r),
		Overheads: OverheadBreakdown(state),
		Rate:      RateBreakdown(r),
	}
}

// LabourBreakdown splits annual labour cost into its display buckets
func LabourBreakdown(r domain.CalculationResults) []Slice {
	return positiveSlices(
		Slice{Label: "Base Wage", Value: r.AnnualBaseWage},
		Slice{Label: "Leave Load", Value: r.HolidayPayAmount},
		Slice{Label: "Allowances", Value: r.Allowances()},
		Slice{Label: "Insurance", Value: r.WorkCoverAmount},
		Slice{Label: "Super & LSL", Value: r.SuperAndLSL()},
	)
}

// OverheadBreakdown has one slice per overhead section
func OverheadBreakdown(state domain.CalculatorState) []Slice {
	in := make([]Slice, 0, len(state.Overheads))
	for _, section := range state.Overheads {
		in = append(in, Slice{
			Label: strings.Replace(section.Title, " Costs", "", 1),
			Value: section.Subtotal(),
		})
	}
	return positiveSlices(in...)
}

// RateBreakdown splits the sell rate into labour, overheads and markup per hour
func RateBreakdown(r domain.CalculationResults) []Slice {
	return positiveSlices(
		Slice{Label: "Labour", Value: r.LabourCostPerHour},
		Slice{Label: "Overheads", Value: r.OverheadCostPerHour},
		Slice{Label: "Profit Markup", Value: r.MarkupAmount},
	)
}

// positiveSlices drops non-positive segments and fills in shares.
// Shares of an overflowed total stay zero.
func positiveSlices(in ...Slice) []Slice {
	out := make([]Slice, 0, len(in))
	var total float64
	for _, s := range in {
		if s.Value > 0 {
			out = append(out, s)
			total += s.Value
		}
	}
	for i := range out {
		if share := out[i].Value / total * 100; finite(share) {
			out[i].Share = share
		}
	}
	return out
}
