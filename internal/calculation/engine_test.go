package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

const tolerance = 1e-9

// scenarioOne is a single tradesperson on $1000/week with statutory on-costs,
// 40 days of leave and no overheads.
func scenarioOne() domain.CalculatorState {
	state := domain.DefaultState()
	state.Wage = domain.WageData{
		WeeklyGross:    1000,
		HolidayLoad:    17.5,
		WorkCover:      5,
		Superannuation: 11,
		LSL:            1,
	}
	state.Time = domain.TimeData{
		AnnualLeaveDays:     20,
		SickDays:            10,
		PublicHolidays:      10,
		StandardHoursPerDay: 8,
	}
	return state
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.False(t, engine.Debug)
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_Calculate(t *testing.T) {
	engine := NewCalculationEngine()

	results, err := engine.Calculate(context.Background(), scenarioOne())
	require.NoError(t, err)
	assert.Equal(t, Compute(scenarioOne()), results)
}

func TestCalculationEngine_CalculateCached(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Cache = NewMemo(0)

	for i := 0; i < 3; i++ {
		results, err := engine.Calculate(context.Background(), scenarioOne())
		require.NoError(t, err)
		assert.Equal(t, Compute(scenarioOne()), results)
	}

	hits, misses := engine.Cache.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
}

func TestCalculationEngine_CalculateCancelled(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := engine.Calculate(ctx, scenarioOne())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, results)
}

func TestCalculationEngine_DebugLogsStages(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	_, err := engine.Calculate(context.Background(), scenarioOne())
	require.NoError(t, err)
	assert.Empty(t, logger.messages, "Nothing logged without Debug")

	engine.Debug = true
	_, err = engine.Calculate(context.Background(), scenarioOne())
	require.NoError(t, err)
	require.Len(t, logger.messages, 4)
	for _, msg := range logger.messages {
		assert.Contains(t, msg, "DEBUG: ")
	}
}

func TestCompute_ScenarioOne(t *testing.T) {
	r := Compute(scenarioOne())

	assert.InDelta(t, 52000, r.AnnualBaseWage, tolerance)
	assert.InDelta(t, 700, r.HolidayPayAmount, tolerance)
	assert.InDelta(t, 2600, r.WorkCoverAmount, tolerance)
	assert.InDelta(t, 5720, r.SuperAmount, tolerance)
	assert.InDelta(t, 520, r.LSLAmount, tolerance)
	assert.Zero(t, r.TravelAllowAmount)
	assert.Zero(t, r.FaresAnnual)
	assert.InDelta(t, 61540, r.TotalLabourCost, tolerance)

	assert.InDelta(t, 8, r.TotalLeaveWeeks, tolerance)
	assert.InDelta(t, 40, r.BillableHoursPerWeek, tolerance)
	assert.InDelta(t, 1760, r.AnnualBillableHours, tolerance)

	assert.Zero(t, r.TotalAnnualExpenses)
	assert.Zero(t, r.OverheadCostPerHour)
	assert.InDelta(t, 61540.0/1760.0, r.LabourCostPerHour, tolerance)
	assert.InDelta(t, 34.97, r.LabourCostPerHour, 0.005)

	assert.Zero(t, r.MarkupAmount)
	assert.InDelta(t, 34.97, r.FinalHourlyRate, 0.005)
}

func TestCompute_ScenarioTwoOverheadsOnly(t *testing.T) {
	state := scenarioOne()
	state.Wage = domain.WageData{}
	state.Overheads = []domain.OverheadSection{
		{Title: "Vehicle Costs", Items: []domain.OverheadItem{{ID: "v1", Name: "Fuel", Qty: 2, UnitCost: 100}}},
	}

	r := Compute(state)

	assert.InDelta(t, 1760, r.AnnualBillableHours, tolerance)
	assert.InDelta(t, 200, r.TotalAnnualExpenses, tolerance)
	assert.InDelta(t, 200.0/1760.0, r.OverheadCostPerHour, tolerance)
	assert.InDelta(t, 0.1136, r.OverheadCostPerHour, 0.0001)
	assert.Zero(t, r.LabourCostPerHour)
}

func TestCompute_ScenarioThreeMarkup(t *testing.T) {
	// 88000 of overheads over 1760 hours is a cost base of exactly 50/hr.
	state := scenarioOne()
	state.Wage = domain.WageData{}
	state.Overheads = []domain.OverheadSection{
		{Title: "Office/Workshop Costs", Items: []domain.OverheadItem{{ID: "o1", Qty: 1, UnitCost: 88000}}},
	}
	state.MarkupPercent = 20

	r := Compute(state)

	assert.InDelta(t, 50, r.CostBasePerHour(), tolerance)
	assert.InDelta(t, 10, r.MarkupAmount, tolerance)
	assert.InDelta(t, 60, r.FinalHourlyRate, tolerance)
}

func TestCompute_AllZero(t *testing.T) {
	assert.Equal(t, domain.CalculationResults{}, Compute(domain.CalculatorState{}))
	assert.Equal(t, domain.CalculationResults{}, Compute(domain.DefaultState()))
}

func TestCompute_DivisionGuards(t *testing.T) {
	tests := []struct {
		name  string
		state func() domain.CalculatorState
		check func(t *testing.T, r domain.CalculationResults)
	}{
		{
			name: "no standard hours zeroes travel allowance",
			state: func() domain.CalculatorState {
				s := scenarioOne()
				s.Wage.TravelDays = 5
				s.Wage.TravelHours = 1.5
				s.Time.StandardHoursPerDay = 0
				return s
			},
			check: func(t *testing.T, r domain.CalculationResults) {
				assert.Zero(t, r.TravelAllowAmount)
				assert.Zero(t, r.AnnualBillableHours)
				assert.Zero(t, r.LabourCostPerHour)
				assert.Zero(t, r.OverheadCostPerHour)
				assert.Zero(t, r.FinalHourlyRate)
			},
		},
		{
			name: "lost time equals standard time",
			state: func() domain.CalculatorState {
				s := scenarioOne()
				s.Time.LostHoursPerDay = 8
				s.Overheads[0].Items[0].Qty = 1
				s.Overheads[0].Items[0].UnitCost = 5000
				return s
			},
			check: func(t *testing.T, r domain.CalculationResults) {
				assert.Zero(t, r.AnnualBillableHours)
				assert.Zero(t, r.LabourCostPerHour)
				assert.Zero(t, r.OverheadCostPerHour)
				assert.InDelta(t, 5000, r.TotalAnnualExpenses, tolerance)
				assert.InDelta(t, 61540, r.TotalLabourCost, tolerance)
			},
		},
		{
			name: "a full year of leave",
			state: func() domain.CalculatorState {
				s := scenarioOne()
				s.Time.AnnualLeaveDays = 240
				return s
			},
			check: func(t *testing.T, r domain.CalculationResults) {
				assert.Zero(t, r.AnnualBillableHours)
				assert.Zero(t, r.FinalHourlyRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(tt.state())
			tt.check(t, r)
			assertFinite(t, r)
		})
	}
}

func TestCompute_Clamping(t *testing.T) {
	t.Run("leave beyond a year", func(t *testing.T) {
		s := scenarioOne()
		s.Wage.FaresAllowance = 50
		s.Wage.TravelDays = 3
		s.Wage.TravelHours = 1
		s.Time.AnnualLeaveDays = 200
		s.Time.SickDays = 50
		s.Time.PublicHolidays = 30

		r := Compute(s)

		assert.InDelta(t, 56, r.TotalLeaveWeeks, tolerance)
		assert.Zero(t, r.FaresAnnual, "working weeks clamp to zero")
		assert.Zero(t, r.TravelAllowAmount)
		assert.Zero(t, r.AnnualBillableHours)
	})

	t.Run("lost hours exceed standard hours", func(t *testing.T) {
		s := scenarioOne()
		s.Time.LostHoursPerDay = 10

		r := Compute(s)

		assert.Zero(t, r.BillableHoursPerWeek)
		assert.Zero(t, r.AnnualBillableHours)
		assert.Zero(t, r.LabourCostPerHour)
	})
}

func TestCompute_TravelAndFares(t *testing.T) {
	s := scenarioOne()
	s.Wage.TravelDays = 5
	s.Wage.TravelHours = 0.5
	s.Wage.FaresAllowance = 20

	r := Compute(s)

	// hourly base 1000/40 = 25; 25 x 5 x 0.5 x 44 weeks
	assert.InDelta(t, 2750, r.TravelAllowAmount, tolerance)
	assert.InDelta(t, 880, r.FaresAnnual, tolerance)
	assert.InDelta(t, 3630, r.Allowances(), tolerance)
	assert.InDelta(t, 61540+3630, r.TotalLabourCost, tolerance)
}

func TestCompute_Additivity(t *testing.T) {
	s := scenarioOne()
	s.Wage.TravelDays = 2
	s.Wage.TravelHours = 1.25
	s.Wage.FaresAllowance = 15
	s.Overheads[0].Items[1] = domain.OverheadItem{ID: "i2", Qty: 1, UnitCost: 1200}
	s.Overheads[1].Items[0] = domain.OverheadItem{ID: "v1", Qty: 12, UnitCost: 650}
	s.Overheads[2].Items[3] = domain.OverheadItem{ID: "o4", Qty: 12, UnitCost: 85.5}

	r := Compute(s)

	sum := r.AnnualBaseWage + r.HolidayPayAmount + r.WorkCoverAmount + r.SuperAmount +
		r.LSLAmount + r.TravelAllowAmount + r.FaresAnnual
	assert.Equal(t, sum, r.TotalLabourCost)

	var expenses float64
	for _, section := range s.Overheads {
		expenses += section.Subtotal()
	}
	assert.InDelta(t, expenses, r.TotalAnnualExpenses, tolerance)
	assert.InDelta(t, 1200+7800+1026, r.TotalAnnualExpenses, tolerance)

	// Regrouping every item under one section changes nothing.
	flat := s.Clone()
	var items []domain.OverheadItem
	for i := len(s.Overheads) - 1; i >= 0; i-- {
		items = append(items, s.Overheads[i].Items...)
	}
	flat.Overheads = []domain.OverheadSection{{Title: "All", Items: items}}
	assert.InDelta(t, r.TotalAnnualExpenses, Compute(flat).TotalAnnualExpenses, tolerance)
}

func TestCompute_MarkupIdentity(t *testing.T) {
	for _, markup := range []float64{0, 12.5, 20, 35, -10, 150} {
		s := scenarioOne()
		s.Overheads[1].Items[2] = domain.OverheadItem{ID: "v3", Qty: 52, UnitCost: 90}
		s.MarkupPercent = markup

		r := Compute(s)

		want := (r.LabourCostPerHour + r.OverheadCostPerHour) * (1 + markup/100)
		assert.InDelta(t, want, r.FinalHourlyRate, tolerance, "markup %v", markup)
	}
}

func TestCompute_NegativeInputDoesNotPanic(t *testing.T) {
	s := scenarioOne()
	s.Wage.WeeklyGross = -500
	s.Wage.HolidayLoad = 150
	s.Overheads[0].Items[0] = domain.OverheadItem{ID: "i1", Qty: -1, UnitCost: 300}
	s.MarkupPercent = -20

	assert.NotPanics(t, func() {
		r := Compute(s)
		assertFinite(t, r)
		assert.Less(t, r.TotalLabourCost, 0.0)
	})
}

func TestCompute_IdempotentAndPure(t *testing.T) {
	s := scenarioOne()
	s.Overheads[2].Items[0] = domain.OverheadItem{ID: "o1", Name: "Premises Rent", Qty: 12, UnitCost: 1500}
	before := s.Clone()

	first := Compute(s)
	second := Compute(s)

	assert.Equal(t, first, second)
	assert.Equal(t, before, s, "input must not be modified")
}

func TestCompute_EmptyOverheads(t *testing.T) {
	s := scenarioOne()
	s.Overheads = nil
	assert.Zero(t, Compute(s).TotalAnnualExpenses)

	s.Overheads = []domain.OverheadSection{{Title: "Empty"}}
	assert.Zero(t, Compute(s).TotalAnnualExpenses)
}

func assertFinite(t *testing.T, r domain.CalculationResults) {
	t.Helper()
	for name, v := range map[string]float64{
		"TotalLabourCost":     r.TotalLabourCost,
		"TravelAllowAmount":   r.TravelAllowAmount,
		"AnnualBillableHours": r.AnnualBillableHours,
		"LabourCostPerHour":   r.LabourCostPerHour,
		"OverheadCostPerHour": r.OverheadCostPerHour,
		"MarkupAmount":        r.MarkupAmount,
		"FinalHourlyRate":     r.FinalHourlyRate,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s is not finite: %v", name, v)
	}
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
