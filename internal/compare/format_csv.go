package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Variant",
		"Type",
		"Final Hourly Rate",
		"Cost Base Per Hour",
		"Annual Billable Hours",
		"Total Labour Cost",
		"Total Annual Expenses",
		"Rate Diff from Base",
		"Rate % Change",
		"Cost Diff from Base",
		"Cost % Change",
		"Hours Diff from Base",
		"Hours % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "variant")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		result.ScenarioName,
		rowType,
		result.FinalHourlyRate.StringFixed(2),
		result.CostBasePerHour.StringFixed(2),
		result.AnnualBillableHours.StringFixed(2),
		result.TotalLabourCost.StringFixed(2),
		result.TotalAnnualExpenses.StringFixed(2),
		result.RateDiffFromBase.StringFixed(2),
		result.RatePctFromBase.StringFixed(2),
		result.CostBaseDiffFromBase.StringFixed(2),
		result.CostBasePctFromBase.StringFixed(2),
		result.HoursDiffFromBase.StringFixed(2),
		result.HoursPctFromBase.StringFixed(2),
	}
}
