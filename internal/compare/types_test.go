package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()

	results := domain.CalculationResults{
		TotalLabourCost:     61540,
		AnnualBillableHours: 1760,
		TotalAnnualExpenses: 8800,
		LabourCostPerHour:   35,
		OverheadCostPerHour: 5,
		FinalHourlyRate:     48,
	}

	result := calc.CalculateMetrics("Test", results)

	if result.ScenarioName != "Test" {
		t.Errorf("Expected name 'Test', got %s", result.ScenarioName)
	}
	if !result.CostBasePerHour.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Expected cost base 40, got %s", result.CostBasePerHour)
	}
	if !result.FinalHourlyRate.Equal(decimal.NewFromInt(48)) {
		t.Errorf("Expected rate 48, got %s", result.FinalHourlyRate)
	}
	if !result.AnnualBillableHours.Equal(decimal.NewFromInt(1760)) {
		t.Errorf("Expected 1760 hours, got %s", result.AnnualBillableHours)
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := calc.CalculateMetrics("base", domain.CalculationResults{
		LabourCostPerHour: 40, FinalHourlyRate: 50, AnnualBillableHours: 1760,
	})
	alt := calc.CalculateMetrics("alt", domain.CalculationResults{
		LabourCostPerHour: 44, FinalHourlyRate: 60, AnnualBillableHours: 1600,
	})

	cmp := calc.CalculateComparison(alt, base)

	if !cmp.RateDiffFromBase.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected rate diff 10, got %s", cmp.RateDiffFromBase)
	}
	if !cmp.RatePctFromBase.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Expected rate pct 20, got %s", cmp.RatePctFromBase)
	}
	if !cmp.CostBasePctFromBase.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected cost pct 10, got %s", cmp.CostBasePctFromBase)
	}
	if !cmp.HoursDiffFromBase.Equal(decimal.NewFromInt(-160)) {
		t.Errorf("Expected hours diff -160, got %s", cmp.HoursDiffFromBase)
	}

	zero := calc.CalculateMetrics("zero", domain.CalculationResults{})
	cmp = calc.CalculateComparison(alt, zero)
	if !cmp.RatePctFromBase.IsZero() {
		t.Errorf("Expected zero pct against zero base, got %s", cmp.RatePctFromBase)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	calc := NewMetricsCalculator()
	base := calc.CalculateMetrics("base", domain.CalculationResults{LabourCostPerHour: 40, FinalHourlyRate: 50, AnnualBillableHours: 1760})

	compSet := &ComparisonSet{
		BaseScenarioName: "base",
		BaseResult:       &base,
		AlternativeResults: []ComparisonResult{
			calc.CalculateMetrics("pricier", domain.CalculationResults{LabourCostPerHour: 40, FinalHourlyRate: 56, AnnualBillableHours: 1760}),
			calc.CalculateMetrics("leaner", domain.CalculationResults{LabourCostPerHour: 36, FinalHourlyRate: 45, AnnualBillableHours: 1800}),
		},
	}

	recs := GenerateRecommendations(compSet)
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %v", recs)
	}
	if !strings.Contains(recs[0], "pricier") || !strings.Contains(recs[0], "$6.00") {
		t.Errorf("Unexpected rate recommendation: %s", recs[0])
	}
	if !strings.Contains(recs[1], "leaner") || !strings.Contains(recs[1], "$4.00") {
		t.Errorf("Unexpected cost recommendation: %s", recs[1])
	}
	if !strings.Contains(recs[2], "40 billable hours") {
		t.Errorf("Unexpected hours recommendation: %s", recs[2])
	}

	if got := GenerateRecommendations(&ComparisonSet{BaseResult: &base}); len(got) != 0 {
		t.Errorf("Expected no recommendations without alternatives, got %v", got)
	}
}
