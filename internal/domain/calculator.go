package domain

import "math"

// WageData holds the per-employee compensation inputs
type WageData struct {
	WeeklyGross    float64 `yaml:"weekly_gross" json:"weeklyGross"`       // currency per week
	HolidayLoad    float64 `yaml:"holiday_load" json:"holidayLoad"`       // percent
	TravelDays     float64 `yaml:"travel_days" json:"travelDays"`         // days per week
	TravelHours    float64 `yaml:"travel_hours" json:"travelHours"`       // hours per travel day
	FaresAllowance float64 `yaml:"fares_allowance" json:"faresAllowance"` // currency per week
	WorkCover      float64 `yaml:"work_cover" json:"workCover"`           // percent of annual base wage
	Superannuation float64 `yaml:"superannuation" json:"superannuation"`  // percent of annual base wage
	LSL            float64 `yaml:"lsl" json:"lsl"`                        // long service leave, percent
}

// TimeData holds the working calendar inputs
type TimeData struct {
	AnnualLeaveDays     float64 `yaml:"annual_leave_days" json:"annualLeaveDays"`
	SickDays            float64 `yaml:"sick_days" json:"sickDays"`
	PublicHolidays      float64 `yaml:"public_holidays" json:"publicHolidays"`
	StandardHoursPerDay float64 `yaml:"standard_hours_per_day" json:"standardHoursPerDay"`
	// LostHoursPerDay is unbillable time within a standard day. Expected to be
	// no greater than StandardHoursPerDay; nothing enforces it.
	LostHoursPerDay float64 `yaml:"lost_hours_per_day" json:"lostHoursPerDay"`
}

// OverheadItem is a single annual expense line
type OverheadItem struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Qty      float64 `yaml:"qty" json:"qty"`
	UnitCost float64 `yaml:"unit_cost" json:"unitCost"`
}

// Total returns the line total (qty x unit cost)
func (i OverheadItem) Total() float64 {
	return i.Qty * i.UnitCost
}

// OverheadSection groups expense lines under a display title
type OverheadSection struct {
	Title string         `yaml:"title" json:"title"`
	Items []OverheadItem `yaml:"items" json:"items"`
}

// Subtotal sums the line totals of the section
func (s OverheadSection) Subtotal() float64 {
	var sum float64
	for _, item := range s.Items {
		sum += item.Total()
	}
	return sum
}

// CalculatorState is the complete input to the rate calculation.
// It is owned by the caller; the engine only reads it.
type CalculatorState struct {
	Wage          WageData          `yaml:"wage" json:"wage"`
	Time          TimeData          `yaml:"time" json:"time"`
	Overheads     []OverheadSection `yaml:"overheads" json:"overheads"`
	MarkupPercent float64           `yaml:"markup_percent" json:"markupPercent"`
}

// CalculationResults is everything derived from a CalculatorState, grouped by stage
type CalculationResults struct {
	// Stage A: annual labour cost
	AnnualBaseWage    float64 `yaml:"annual_base_wage" json:"annualBaseWage"`
	HolidayPayAmount  float64 `yaml:"holiday_pay_amount" json:"holidayPayAmount"`
	WorkCoverAmount   float64 `yaml:"work_cover_amount" json:"workCoverAmount"`
	SuperAmount       float64 `yaml:"super_amount" json:"superAmount"`
	LSLAmount         float64 `yaml:"lsl_amount" json:"lslAmount"`
	TravelAllowAmount float64 `yaml:"travel_allow_amount" json:"travelAllowAmount"`
	FaresAnnual       float64 `yaml:"fares_annual" json:"faresAnnual"`
	TotalLabourCost   float64 `yaml:"total_labour_cost" json:"totalLabourCost"`

	// Stage B: billable hours
	TotalLeaveWeeks      float64 `yaml:"total_leave_weeks" json:"totalLeaveWeeks"`
	BillableHoursPerWeek float64 `yaml:"billable_hours_per_week" json:"billableHoursPerWeek"`
	AnnualBillableHours  float64 `yaml:"annual_billable_hours" json:"annualBillableHours"`

	// Stage C: hourly overheads
	TotalAnnualExpenses float64 `yaml:"total_annual_expenses" json:"totalAnnualExpenses"`
	LabourCostPerHour   float64 `yaml:"labour_cost_per_hour" json:"labourCostPerHour"`
	OverheadCostPerHour float64 `yaml:"overhead_cost_per_hour" json:"overheadCostPerHour"`

	// Stage D: sell rate
	MarkupAmount    float64 `yaml:"markup_amount" json:"markupAmount"`
	FinalHourlyRate float64 `yaml:"final_hourly_rate" json:"finalHourlyRate"`
}

// CostBasePerHour is labour plus overhead cost per hour, before markup
func (r CalculationResults) CostBasePerHour() float64 {
	return r.LabourCostPerHour + r.OverheadCostPerHour
}

// IsFinite reports whether every result field is a finite number.
// Inputs near the float64 limit overflow to ±Inf or NaN part way through.
func (r CalculationResults) IsFinite() bool {
	for _, v := range []float64{
		r.AnnualBaseWage, r.HolidayPayAmount, r.WorkCoverAmount, r.SuperAmount, r.LSLAmount,
		r.TravelAllowAmount, r.FaresAnnual, r.TotalLabourCost,
		r.TotalLeaveWeeks, r.BillableHoursPerWeek, r.AnnualBillableHours,
		r.TotalAnnualExpenses, r.LabourCostPerHour, r.OverheadCostPerHour,
		r.MarkupAmount, r.FinalHourlyRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Allowances is travel allowance plus annual fares
func (r CalculationResults) Allowances() float64 {
	return r.TravelAllowAmount + r.FaresAnnual
}

// SuperAndLSL is superannuation plus long service leave accrual
func (r CalculationResults) SuperAndLSL() float64 {
	return r.SuperAmount + r.LSLAmount
}
