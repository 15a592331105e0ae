package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders the printed report layout as plain text
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Results
	rule := strings.Repeat("=", 72)
	thin := strings.Repeat("-", 40)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, strings.ToUpper(report.Title))
	fmt.Fprintln(&buf, report.Course)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Student: %s\n", report.Student())
	fmt.Fprintf(&buf, "Date:    %s\n", report.Date())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TOTAL LABOUR COST BREAKDOWN")
	fmt.Fprintln(&buf, thin)
	line(&buf, "Annual Base Wage", FormatCurrency(r.AnnualBaseWage))
	line(&buf, "Leave Loading", FormatCurrency(r.HolidayPayAmount))
	line(&buf, "Allowances", FormatCurrency(r.Allowances()))
	line(&buf, "Insurance (WorkCover)", FormatCurrency(r.WorkCoverAmount))
	line(&buf, "Super & LSL", FormatCurrency(r.SuperAndLSL()))
	line(&buf, "TOTAL LABOUR COST", FormatCurrency(r.TotalLabourCost))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ANNUAL BILLABLE HOURS")
	fmt.Fprintln(&buf, thin)
	line(&buf, "Total Leave Weeks", FormatNumber(r.TotalLeaveWeeks))
	line(&buf, "Billable Hours Per Week", FormatHours(r.BillableHoursPerWeek))
	line(&buf, "ANNUAL BILLABLE HOURS", FormatHours(r.AnnualBillableHours))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "HOURLY OVERHEADS SUMMARY")
	fmt.Fprintln(&buf, thin)
	for _, section := range report.State.Overheads {
		line(&buf, section.Title, FormatCurrency(section.Subtotal()))
	}
	line(&buf, "Total Annual Expenses", FormatCurrency(r.TotalAnnualExpenses))
	line(&buf, "HOURLY OVERHEADS", FormatRate(r.OverheadCostPerHour))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FINAL SELL RATE")
	fmt.Fprintln(&buf, thin)
	fmt.Fprintf(&buf, "  %s + %s  x %s (markup %s%%)\n",
		FormatCurrency(r.LabourCostPerHour), FormatCurrency(r.OverheadCostPerHour),
		FormatMultiplier(report.State.MarkupPercent), FormatInput(report.State.MarkupPercent))
	line(&buf, "SELL RATE", FormatRate(r.FinalHourlyRate)+" ("+report.GSTNote+")")
	fmt.Fprintln(&buf)

	writeChart(&buf, "Labour Cost Distribution", report.Breakdown.Labour)
	writeChart(&buf, "Overheads Distribution", report.Breakdown.Overheads)
	writeChart(&buf, "Rate Composition", report.Breakdown.Rate)

	if len(report.Notes) > 0 {
		fmt.Fprintln(&buf, "NOTES:")
		for _, n := range report.Notes {
			fmt.Fprintf(&buf, "• %s\n", n)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Disclaimer: %s\n", report.Disclaimer)

	return buf.Bytes(), nil
}

func line(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-28s %16s\n", label+":", value)
}

func writeChart(buf *bytes.Buffer, title string, slices []Slice) {
	if len(slices) == 0 {
		return
	}
	fmt.Fprintf(buf, "%s\n", strings.ToUpper(title))
	for _, s := range slices {
		fmt.Fprintf(buf, "  %-14s %s %6s%%\n", s.Label, Bar(s.Share, 24), FormatNumber(s.Share))
	}
	fmt.Fprintln(buf)
}
