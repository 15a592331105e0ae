package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per result field, grouped by stage
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	r := report.Results

	rows := [][]string{
		{"Stage", "Field", "Value"},
		{"labour", "annual_base_wage", floatString(r.AnnualBaseWage)},
		{"labour", "holiday_pay_amount", floatString(r.HolidayPayAmount)},
		{"labour", "work_cover_amount", floatString(r.WorkCoverAmount)},
		{"labour", "super_amount", floatString(r.SuperAmount)},
		{"labour", "lsl_amount", floatString(r.LSLAmount)},
		{"labour", "travel_allow_amount", floatString(r.TravelAllowAmount)},
		{"labour", "fares_annual", floatString(r.FaresAnnual)},
		{"labour", "total_labour_cost", floatString(r.TotalLabourCost)},
		{"hours", "total_leave_weeks", floatString(r.TotalLeaveWeeks)},
		{"hours", "billable_hours_per_week", floatString(r.BillableHoursPerWeek)},
		{"hours", "annual_billable_hours", floatString(r.AnnualBillableHours)},
		{"overheads", "total_annual_expenses", floatString(r.TotalAnnualExpenses)},
		{"overheads", "labour_cost_per_hour", floatString(r.LabourCostPerHour)},
		{"overheads", "overhead_cost_per_hour", floatString(r.OverheadCostPerHour)},
		{"rate", "markup_amount", floatString(r.MarkupAmount)},
		{"rate", "final_hourly_rate", floatString(r.FinalHourlyRate)},
	}
	for _, section := range report.State.Overheads {
		rows = append(rows, []string{"overhead_section", section.Title, floatString(section.Subtotal())})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// floatString keeps full precision so the CSV can be re-used for checking
func floatString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
