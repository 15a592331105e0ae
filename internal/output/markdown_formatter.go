package output

import (
	"bytes"
	"fmt"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown tables.
// The HTML formatter renders this output through goldmark.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Results

	fmt.Fprintf(&buf, "# %s\n\n", report.Title)
	fmt.Fprintf(&buf, "%s\n\n", report.Course)
	fmt.Fprintf(&buf, "**Student:** %s  \n**Date:** %s\n\n", report.Student(), report.Date())

	fmt.Fprintf(&buf, "## Total Labour Cost Breakdown\n\n")
	table(&buf,
		[2]string{"Base Wage", FormatCurrency(r.AnnualBaseWage)},
		[2]string{"Superannuation & LSL", FormatCurrency(r.SuperAndLSL())},
		[2]string{"Leave Loading", FormatCurrency(r.HolidayPayAmount)},
		[2]string{"Allowances", FormatCurrency(r.Allowances())},
		[2]string{"Insurance (WorkCover)", FormatCurrency(r.WorkCoverAmount)},
		[2]string{"**TOTAL ANNUAL LABOUR**", "**" + FormatCurrency(r.TotalLabourCost) + "**"},
	)

	fmt.Fprintf(&buf, "## Annual Billable Hours\n\n")
	table(&buf,
		[2]string{"Total Leave Weeks", FormatNumber(r.TotalLeaveWeeks)},
		[2]string{"Billable Hours Per Week", FormatHours(r.BillableHoursPerWeek)},
		[2]string{"**ANNUAL BILLABLE HOURS**", "**" + FormatHours(r.AnnualBillableHours) + "**"},
	)

	fmt.Fprintf(&buf, "## Hourly Overheads Summary\n\n")
	rows := make([][2]string, 0, len(report.State.Overheads)+2)
	for _, section := range report.State.Overheads {
		rows = append(rows, [2]string{section.Title, FormatCurrency(section.Subtotal())})
	}
	rows = append(rows,
		[2]string{"Total Annual Expenses", FormatCurrency(r.TotalAnnualExpenses)},
		[2]string{"**HOURLY OVERHEADS**", "**" + FormatRate(r.OverheadCostPerHour) + "**"},
	)
	table(&buf, rows...)

	fmt.Fprintf(&buf, "## Final Sell Rate\n\n")
	fmt.Fprintf(&buf, "(%s labour/hr + %s overheads/hr) x %s (markup %s%%)\n\n",
		FormatCurrency(r.LabourCostPerHour), FormatCurrency(r.OverheadCostPerHour),
		FormatMultiplier(report.State.MarkupPercent), FormatInput(report.State.MarkupPercent))
	fmt.Fprintf(&buf, "**Sell Rate: %s** (%s)\n\n", FormatRate(r.FinalHourlyRate), report.GSTNote)

	if len(report.Notes) > 0 {
		fmt.Fprintf(&buf, "## Notes\n\n")
		for _, n := range report.Notes {
			fmt.Fprintf(&buf, "- %s\n", n)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "---\n\n*%s - Theoretical Exercise*\n\n", report.Course)
	fmt.Fprintf(&buf, "**Disclaimer:** %s\n", report.Disclaimer)
	return buf.Bytes(), nil
}

func table(buf *bytes.Buffer, rows ...[2]string) {
	fmt.Fprintf(buf, "| Item | Amount |\n|---|---:|\n")
	for _, row := range rows {
		fmt.Fprintf(buf, "| %s | %s |\n", row[0], row[1])
	}
	fmt.Fprintln(buf)
}
