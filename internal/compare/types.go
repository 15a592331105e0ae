package compare

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/transform"
)

var hundred = decimal.NewFromInt(100)

// Variant is a named set of edits to compare against the base state
type Variant struct {
	Name        string
	Description string
	Transforms  []transform.StateTransform
}

// ComparisonResult represents a single calculated variant with its key metrics
type ComparisonResult struct {
	ScenarioName string                    `json:"scenarioName"`
	Description  string                    `json:"description,omitempty"`
	Results      domain.CalculationResults `json:"results"`

	// Key Metrics
	FinalHourlyRate     decimal.Decimal `json:"finalHourlyRate"`
	CostBasePerHour     decimal.Decimal `json:"costBasePerHour"`
	AnnualBillableHours decimal.Decimal `json:"annualBillableHours"`
	TotalLabourCost     decimal.Decimal `json:"totalLabourCost"`
	TotalAnnualExpenses decimal.Decimal `json:"totalAnnualExpenses"`

	// Comparison to Base
	RateDiffFromBase     decimal.Decimal `json:"rateDiffFromBase"`
	RatePctFromBase      decimal.Decimal `json:"ratePctFromBase"`
	CostBaseDiffFromBase decimal.Decimal `json:"costBaseDiffFromBase"`
	CostBasePctFromBase  decimal.Decimal `json:"costBasePctFromBase"`
	HoursDiffFromBase    decimal.Decimal `json:"hoursDiffFromBase"`
	HoursPctFromBase     decimal.Decimal `json:"hoursPctFromBase"`
}

// ComparisonSet represents a base calculation and its variants
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics converts results into a comparison row
func (mc *MetricsCalculator) CalculateMetrics(name string, results domain.CalculationResults) ComparisonResult {
	return ComparisonResult{
		ScenarioName:        name,
		Results:             results,
		FinalHourlyRate:     toDecimal(results.FinalHourlyRate),
		CostBasePerHour:     toDecimal(results.CostBasePerHour()),
		AnnualBillableHours: toDecimal(results.AnnualBillableHours),
		TotalLabourCost:     toDecimal(results.TotalLabourCost),
		TotalAnnualExpenses: toDecimal(results.TotalAnnualExpenses),
	}
}

// toDecimal maps ±Inf and NaN to zero; Compare rejects such results before they get here
func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// CalculateComparison computes deltas between a variant and the base.
// Percent changes are zero when the base value is zero.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.RateDiffFromBase, scenario.RatePctFromBase = delta(scenario.FinalHourlyRate, base.FinalHourlyRate)
	scenario.CostBaseDiffFromBase, scenario.CostBasePctFromBase = delta(scenario.CostBasePerHour, base.CostBasePerHour)
	scenario.HoursDiffFromBase, scenario.HoursPctFromBase = delta(scenario.AnnualBillableHours, base.AnnualBillableHours)
	return scenario
}

func delta(value, base decimal.Decimal) (diff, pct decimal.Decimal) {
	diff = value.Sub(base)
	if !base.IsZero() {
		pct = diff.Div(base).Mul(hundred)
	}
	return diff, pct
}

// GenerateRecommendations picks out the variants that stand out from the base
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	highest := base
	lowestCost := base
	mostHours := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalHourlyRate.GreaterThan(highest.FinalHourlyRate) {
			highest = alt
		}
		if alt.CostBasePerHour.LessThan(lowestCost.CostBasePerHour) {
			lowestCost = alt
		}
		if alt.AnnualBillableHours.GreaterThan(mostHours.AnnualBillableHours) {
			mostHours = alt
		}
	}

	if highest != base {
		recommendations = append(recommendations,
			"Highest Rate: "+highest.ScenarioName+" charges $"+
				highest.FinalHourlyRate.Sub(base.FinalHourlyRate).StringFixed(2)+" more per hour than base")
	}
	if lowestCost != base {
		recommendations = append(recommendations,
			"Lowest Cost: "+lowestCost.ScenarioName+" costs $"+
				base.CostBasePerHour.Sub(lowestCost.CostBasePerHour).StringFixed(2)+" less per hour to deliver")
	}
	if mostHours != base {
		recommendations = append(recommendations,
			"Most Billable Time: "+mostHours.ScenarioName+" adds "+
				mostHours.AnnualBillableHours.Sub(base.AnnualBillableHours).StringFixed(0)+" billable hours a year")
	}

	return recommendations
}
