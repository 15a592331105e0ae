package calculation

import (
	"context"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

const (
	weeksPerYear   = 52.0
	daysPerWeek    = 5.0
	percentDivisor = 100.0
)

// CalculationEngine wraps Compute with logging and cancellation for callers
// that run inside a CLI command or request handler.
type CalculationEngine struct {
	Logger Logger
	Debug  bool  // Log every stage of each calculation
	Cache  *Memo // Optional; nil computes every call
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger installs NopLogger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate computes the results for state. The only error it returns is the
// context's, when the context is already done.
func (ce *CalculationEngine) Calculate(ctx context.Context, state domain.CalculatorState) (domain.CalculationResults, error) {
	if err := ctx.Err(); err != nil {
		return domain.CalculationResults{}, err
	}

	var results domain.CalculationResults
	if ce.Cache != nil {
		results = ce.Cache.Compute(state)
	} else {
		results = Compute(state)
	}
	if ce.Debug {
		ce.logStages(results)
	}
	return results, nil
}

func (ce *CalculationEngine) logStages(r domain.CalculationResults) {
	log := ce.Logger
	if log == nil {
		log = NopLogger{}
	}
	log.Debugf("labour: base=%.2f holiday=%.2f workcover=%.2f super=%.2f lsl=%.2f travel=%.2f fares=%.2f total=%.2f",
		r.AnnualBaseWage, r.HolidayPayAmount, r.WorkCoverAmount, r.SuperAmount, r.LSLAmount,
		r.TravelAllowAmount, r.FaresAnnual, r.TotalLabourCost)
	log.Debugf("hours: leaveWeeks=%.2f perWeek=%.2f annual=%.2f",
		r.TotalLeaveWeeks, r.BillableHoursPerWeek, r.AnnualBillableHours)
	log.Debugf("overheads: expenses=%.2f labour/hr=%.4f overhead/hr=%.4f",
		r.TotalAnnualExpenses, r.LabourCostPerHour, r.OverheadCostPerHour)
	log.Debugf("rate: markup=%.4f final=%.4f", r.MarkupAmount, r.FinalHourlyRate)
}

// Compute derives every result field from state. It is total over finite input:
// zero denominators yield zero and negative working time is clamped to zero.
// The state is never modified.
func Compute(state domain.CalculatorState) domain.CalculationResults {
	var r domain.CalculationResults

	workingWeeks := computeLabour(state.Wage, state.Time, &r)
	computeHours(state.Time, workingWeeks, &r)
	computeOverheads(state.Overheads, &r)
	computeRate(state.MarkupPercent, &r)

	return r
}

// computeLabour fills the annual labour cost stage and returns the working weeks
// it derived, which the hours stage reuses.
func computeLabour(w domain.WageData, t domain.TimeData, r *domain.CalculationResults) float64 {
	r.AnnualBaseWage = w.WeeklyGross * weeksPerYear

	leaveWeeks := t.AnnualLeaveDays / daysPerWeek
	r.HolidayPayAmount = w.WeeklyGross * (w.HolidayLoad / percentDivisor) * leaveWeeks

	r.WorkCoverAmount = r.AnnualBaseWage * (w.WorkCover / percentDivisor)
	r.SuperAmount = r.AnnualBaseWage * (w.Superannuation / percentDivisor)
	r.LSLAmount = r.AnnualBaseWage * (w.LSL / percentDivisor)

	r.TotalLeaveWeeks = (t.AnnualLeaveDays + t.SickDays + t.PublicHolidays) / daysPerWeek
	workingWeeks := max(0, weeksPerYear-r.TotalLeaveWeeks)

	var hourlyRateBase float64
	if t.StandardHoursPerDay > 0 {
		hourlyRateBase = w.WeeklyGross / (t.StandardHoursPerDay * daysPerWeek)
	}

	r.TravelAllowAmount = hourlyRateBase * w.TravelDays * w.TravelHours * workingWeeks
	r.FaresAnnual = w.FaresAllowance * workingWeeks

	r.TotalLabourCost = r.AnnualBaseWage + r.HolidayPayAmount + r.WorkCoverAmount +
		r.SuperAmount + r.LSLAmount + r.TravelAllowAmount + r.FaresAnnual

	return workingWeeks
}

func computeHours(t domain.TimeData, workingWeeks float64, r *domain.CalculationResults) {
	r.BillableHoursPerWeek = max(0, (t.StandardHoursPerDay-t.LostHoursPerDay)*daysPerWeek)
	r.AnnualBillableHours = workingWeeks * r.BillableHoursPerWeek
}

// computeOverheads needs the hours stage to have run first.
func computeOverheads(sections []domain.OverheadSection, r *domain.CalculationResults) {
	var total float64
	for _, section := range sections {
		for _, item := range section.Items {
			total += item.Qty * item.UnitCost
		}
	}
	r.TotalAnnualExpenses = total

	if r.AnnualBillableHours > 0 {
		r.OverheadCostPerHour = r.TotalAnnualExpenses / r.AnnualBillableHours
		r.LabourCostPerHour = r.TotalLabourCost / r.AnnualBillableHours
	}
}

func computeRate(markupPercent float64, r *domain.CalculationResults) {
	costBase := r.LabourCostPerHour + r.OverheadCostPerHour
	r.MarkupAmount = costBase * (markupPercent / percentDivisor)
	r.FinalHourlyRate = costBase + r.MarkupAmount
}
