package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rgehrsitz/labourrate/internal/calculation"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *calculation.SensitivityAnalysis) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *calculation.SensitivityAnalysis) (string, error) {
	if analysis == nil || len(analysis.Points) == 0 {
		return "", fmt.Errorf("no points in sensitivity analysis")
	}
	var buf bytes.Buffer
	p := analysis.Parameter
	first, last := analysis.Points[0], analysis.Points[len(analysis.Points)-1]

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(p.Label))
	fmt.Fprintf(&buf, "=================================================================\n")
	fmt.Fprintf(&buf, "Base Case: %s\n", formatParameterValue(p.Prefix, p.Suffix, analysis.BaseValue))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n",
		formatParameterValue(p.Prefix, p.Suffix, first.Value),
		formatParameterValue(p.Prefix, p.Suffix, last.Value),
		len(analysis.Points))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-16s %16s %16s %14s\n", "Value", "Sell Rate", "Cost Base/hr", "Billable hrs")
	fmt.Fprintf(&buf, "%-16s %16s %16s %14s\n", "-----", "---------", "------------", "------------")
	for _, pt := range analysis.Points {
		marker := ""
		if pt.Value == analysis.BaseValue {
			marker = " *"
		}
		fmt.Fprintf(&buf, "%-16s %16s %16s %14s%s\n",
			formatParameterValue(p.Prefix, p.Suffix, pt.Value),
			FormatCurrency(pt.Results.FinalHourlyRate),
			FormatCurrency(pt.Results.CostBasePerHour()),
			FormatNumber(pt.Results.AnnualBillableHours),
			marker)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Sell rate changes by %s per unit of %s across the sweep\n",
		FormatCurrency(analysis.RatePerUnit), strings.ToLower(p.Label))
	return buf.String(), nil
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *calculation.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no sensitivity analysis")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{string(analysis.Parameter.Key), "FinalHourlyRate", "CostBasePerHour", "AnnualBillableHours", "TotalLabourCost"}}
	for _, pt := range analysis.Points {
		rows = append(rows, []string{
			floatString(pt.Value),
			FormatNumber(pt.Results.FinalHourlyRate),
			FormatNumber(pt.Results.CostBasePerHour()),
			FormatNumber(pt.Results.AnnualBillableHours),
			FormatNumber(pt.Results.TotalLabourCost),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *calculation.SensitivityAnalysis) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSensitivityFormatter creates a sensitivity formatter, defaulting to console
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch strings.ToLower(format) {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}

func formatParameterValue(prefix, suffix string, v float64) string {
	s := prefix + FormatInput(v)
	if suffix != "" {
		if suffix == "%" {
			return s + suffix
		}
		s += " " + suffix
	}
	return s
}
