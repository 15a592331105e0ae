package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// SensitivityParameter describes a sweep over one calculator input
type SensitivityParameter struct {
	Key   domain.ParameterKey `yaml:"key" json:"key"`
	Min   float64             `yaml:"min" json:"min"`
	Max   float64             `yaml:"max" json:"max"`
	Steps int                 `yaml:"steps" json:"steps"`
}

// SensitivityPoint is one evaluated value of the swept parameter
type SensitivityPoint struct {
	Value   float64                   `json:"value"`
	Results domain.CalculationResults `json:"results"`
}

// SensitivityAnalysis is the outcome of a single parameter sweep
type SensitivityAnalysis struct {
	Parameter domain.ParameterInfo `json:"parameter"`
	BaseValue float64              `json:"baseValue"`
	Points    []SensitivityPoint   `json:"points"`
	// RatePerUnit is the change in final hourly rate per unit of the parameter
	// across the whole sweep.
	RatePerUnit float64 `json:"ratePerUnit"`
}

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	calculationEngine *CalculationEngine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer
func NewSensitivityAnalyzer(engine *CalculationEngine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	return &SensitivityAnalyzer{calculationEngine: engine}
}

// AnalyzeParameter evaluates state once per evenly spaced value of the parameter
func (sa *SensitivityAnalyzer) AnalyzeParameter(ctx context.Context, state domain.CalculatorState, param SensitivityParameter) (*SensitivityAnalysis, error) {
	info, err := domain.LookupParameter(param.Key)
	if err != nil {
		return nil, err
	}
	if param.Steps < 2 {
		return nil, fmt.Errorf("sensitivity sweep needs at least 2 steps, got %d", param.Steps)
	}
	if math.IsNaN(param.Min) || math.IsInf(param.Min, 0) || math.IsNaN(param.Max) || math.IsInf(param.Max, 0) {
		return nil, fmt.Errorf("sensitivity range must be finite, got %v to %v", param.Min, param.Max)
	}
	if param.Min > param.Max {
		return nil, fmt.Errorf("sensitivity min %.4g exceeds max %.4g", param.Min, param.Max)
	}

	base, err := state.Parameter(param.Key)
	if err != nil {
		return nil, err
	}

	analysis := &SensitivityAnalysis{
		Parameter: info,
		BaseValue: base,
		Points:    make([]SensitivityPoint, 0, param.Steps),
	}

	for _, value := range generateParameterValues(param) {
		modified, err := state.WithParameter(param.Key, value)
		if err != nil {
			return nil, err
		}
		results, err := sa.calculationEngine.Calculate(ctx, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate %s=%v: %w", param.Key, value, err)
		}
		analysis.Points = append(analysis.Points, SensitivityPoint{Value: value, Results: results})
	}

	first := analysis.Points[0]
	last := analysis.Points[len(analysis.Points)-1]
	if span := last.Value - first.Value; span != 0 {
		analysis.RatePerUnit = (last.Results.FinalHourlyRate - first.Results.FinalHourlyRate) / span
	}

	return analysis, nil
}

// generateParameterValues spaces Steps values from Min to Max inclusive.
// Decimal stepping keeps the endpoints exact.
func generateParameterValues(param SensitivityParameter) []float64 {
	minValue := decimal.NewFromFloat(param.Min)
	maxValue := decimal.NewFromFloat(param.Max)
	stepSize := maxValue.Sub(minValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))

	values := make([]float64, 0, param.Steps)
	for i := 0; i < param.Steps-1; i++ {
		values = append(values, minValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))).InexactFloat64())
	}
	return append(values, param.Max)
}
