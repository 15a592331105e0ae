package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/domain"
)

func sumShares(slices []Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Share
	}
	return total
}

func TestLabourBreakdown(t *testing.T) {
	r := calculation.Compute(buildTestState())
	labour := LabourBreakdown(r)

	// allowances are zero and therefore dropped
	require.Len(t, labour, 4)
	assert.Equal(t, "Base Wage", labour[0].Label)
	assert.InDelta(t, 52000, labour[0].Value, 1e-9)
	assert.Equal(t, "Super & LSL", labour[3].Label)
	assert.InDelta(t, 6240, labour[3].Value, 1e-9)
	assert.InDelta(t, 100, sumShares(labour), 1e-9)
}

func TestOverheadBreakdown(t *testing.T) {
	state := buildTestState()
	state.Overheads = append(state.Overheads,
		domain.OverheadSection{Title: "Office/Workshop Costs", Items: []domain.OverheadItem{{ID: "o1", Qty: 1, UnitCost: 600}}},
		domain.OverheadSection{Title: "Insurance Costs"},
	)

	overheads := OverheadBreakdown(state)

	require.Len(t, overheads, 2)
	assert.Equal(t, "Vehicle", overheads[0].Label)
	assert.Equal(t, "Office/Workshop", overheads[1].Label)
	assert.InDelta(t, 25, overheads[0].Share, 1e-9)
	assert.InDelta(t, 75, overheads[1].Share, 1e-9)
}

func TestRateBreakdown(t *testing.T) {
	state := buildTestState()
	state.MarkupPercent = 20
	r := calculation.Compute(state)

	rate := RateBreakdown(r)

	require.Len(t, rate, 3)
	assert.Equal(t, "Profit Markup", rate[2].Label)
	assert.InDelta(t, r.MarkupAmount, rate[2].Value, 1e-9)
	assert.InDelta(t, 100, sumShares(rate), 1e-9)
}

func TestBreakdown_AllZero(t *testing.T) {
	b := NewBreakdown(domain.CalculatorState{}, domain.CalculationResults{})

	assert.Empty(t, b.Labour)
	assert.Empty(t, b.Overheads)
	assert.Empty(t, b.Rate)
}
