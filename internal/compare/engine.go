package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/transform"
)

// ErrOverflow is returned when inputs are large enough that results leave the float64 range
var ErrOverflow = errors.New("results overflowed; inputs are too large to compare")

// CompareEngine orchestrates variant comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string    // Label for the base row; defaults to "base"
	Templates        []string  // Built-in template names to compare
	Variants         []Variant // Explicit variants, compared after templates
	ConfigPath       string
}

// Compare calculates base and every variant, then the deltas of each variant against base
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.CalculatorState,
	options CompareOptions,
) (*ComparisonSet, error) {
	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = "base"
	}

	variants := make([]Variant, 0, len(options.Templates)+len(options.Variants))
	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}
		variants = append(variants, Variant{
			Name:        template.Name,
			Description: template.Description,
			Transforms:  template.Transforms,
		})
	}
	variants = append(variants, options.Variants...)

	baseResults, err := ce.CalcEngine.Calculate(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base: %w", err)
	}
	if !baseResults.IsFinite() {
		return nil, fmt.Errorf("base: %w", ErrOverflow)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, baseResults)

	alternatives := []ComparisonResult{}
	for _, variant := range variants {
		modified, err := transform.ApplyTransforms(base, variant.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply variant %s: %w", variant.Name, err)
		}

		results, err := ce.CalcEngine.Calculate(ctx, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate variant %s: %w", variant.Name, err)
		}
		if !results.IsFinite() {
			return nil, fmt.Errorf("variant %s: %w", variant.Name, ErrOverflow)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(variant.Name, results)
		altResult.Description = variant.Description
		if altResult.Description == "" {
			altResult.Description = joinDescriptions(variant.Transforms)
		}
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		ConfigPath:         options.ConfigPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func joinDescriptions(transforms []transform.StateTransform) string {
	return strings.Join(transform.Describe(transforms), "; ")
}
