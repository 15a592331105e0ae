package transform

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// SetParameter replaces one scalar input
type SetParameter struct {
	Key   domain.ParameterKey
	Value float64
}

func (t *SetParameter) Name() string { return "set" }

func (t *SetParameter) Description() string {
	return fmt.Sprintf("Set %s to %g", t.Key, t.Value)
}

func (t *SetParameter) Validate(base domain.CalculatorState) error {
	if _, err := domain.LookupParameter(t.Key); err != nil {
		return NewTransformError(t.Name(), "validate", "unknown parameter", err)
	}
	if !isFinite(t.Value) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("value for %s must be finite", t.Key), nil)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteResult guards arithmetic transforms against results that leave the float64 range
func finiteResult(name string, key string, v float64) error {
	if !isFinite(v) {
		return NewTransformError(name, "apply", fmt.Sprintf("%s overflows to %g", key, v), nil)
	}
	return nil
}

func (t *SetParameter) Apply(base domain.CalculatorState) (domain.CalculatorState, error) {
	return base.WithParameter(t.Key, t.Value)
}

// AdjustParameter adds Delta to one scalar input
type AdjustParameter struct {
	Key   domain.ParameterKey
	Delta float64
}

func (t *AdjustParameter) Name() string { return "adjust" }

func (t *AdjustParameter) Description() string {
	return fmt.Sprintf("Adjust %s by %+g", t.Key, t.Delta)
}

func (t *AdjustParameter) Validate(base domain.CalculatorState) error {
	if _, err := domain.LookupParameter(t.Key); err != nil {
		return NewTransformError(t.Name(), "validate", "unknown parameter", err)
	}
	if !isFinite(t.Delta) {
		return NewTransformError(t.Name(), "validate", "delta must be finite", nil)
	}
	return nil
}

func (t *AdjustParameter) Apply(base domain.CalculatorState) (domain.CalculatorState, error) {
	current, err := base.Parameter(t.Key)
	if err != nil {
		return base, err
	}
	next := current + t.Delta
	if err := finiteResult(t.Name(), string(t.Key), next); err != nil {
		return base, err
	}
	return base.WithParameter(t.Key, next)
}

// ScaleParameter multiplies one scalar input by Factor
type ScaleParameter struct {
	Key    domain.ParameterKey
	Factor float64
}

func (t *ScaleParameter) Name() string { return "scale" }

func (t *ScaleParameter) Description() string {
	return fmt.Sprintf("Scale %s by %g", t.Key, t.Factor)
}

func (t *ScaleParameter) Validate(base domain.CalculatorState) error {
	if _, err := domain.LookupParameter(t.Key); err != nil {
		return NewTransformError(t.Name(), "validate", "unknown parameter", err)
	}
	if !isFinite(t.Factor) {
		return NewTransformError(t.Name(), "validate", "factor must be finite", nil)
	}
	if t.Factor < 0 {
		return NewTransformError(t.Name(), "validate", "factor cannot be negative", nil)
	}
	return nil
}

func (t *ScaleParameter) Apply(base domain.CalculatorState) (domain.CalculatorState, error) {
	current, err := base.Parameter(t.Key)
	if err != nil {
		return base, err
	}
	next := current * t.Factor
	if err := finiteResult(t.Name(), string(t.Key), next); err != nil {
		return base, err
	}
	return base.WithParameter(t.Key, next)
}

// SetOverhead replaces the qty or unit cost of one overhead line, addressed by id
type SetOverhead struct {
	ID    string
	Field domain.OverheadField
	Value float64
}

func (t *SetOverhead) Name() string { return "set_overhead" }

func (t *SetOverhead) Description() string {
	return fmt.Sprintf("Set overhead %s %s to %g", t.ID, t.Field, t.Value)
}

func (t *SetOverhead) Validate(base domain.CalculatorState) error {
	if _, _, ok := base.FindOverhead(t.ID); !ok {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("no overhead item with id %q", t.ID), nil)
	}
	if t.Field != domain.FieldQty && t.Field != domain.FieldUnitCost {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("field must be %s or %s", domain.FieldQty, domain.FieldUnitCost), nil)
	}
	if !isFinite(t.Value) {
		return NewTransformError(t.Name(), "validate", "value must be finite", nil)
	}
	return nil
}

func (t *SetOverhead) Apply(base domain.CalculatorState) (domain.CalculatorState, error) {
	si, ii, ok := base.FindOverhead(t.ID)
	if !ok {
		return base, fmt.Errorf("no overhead item with id %q", t.ID)
	}
	return base.WithOverhead(si, ii, t.Field, t.Value)
}

// ScaleOverheads multiplies every overhead unit cost by Factor, e.g. 1.03 for a year of inflation
type ScaleOverheads struct {
	Factor float64
}

func (t *ScaleOverheads) Name() string { return "scale_overheads" }

func (t *ScaleOverheads) Description() string {
	return fmt.Sprintf("Scale all overhead unit costs by %g", t.Factor)
}

func (t *ScaleOverheads) Validate(base domain.CalculatorState) error {
	if !isFinite(t.Factor) {
		return NewTransformError(t.Name(), "validate", "factor must be finite", nil)
	}
	if t.Factor < 0 {
		return NewTransformError(t.Name(), "validate", "factor cannot be negative", nil)
	}
	return nil
}

func (t *ScaleOverheads) Apply(base domain.CalculatorState) (domain.CalculatorState, error) {
	out := base.Clone()
	for si := range out.Overheads {
		for ii := range out.Overheads[si].Items {
			item := &out.Overheads[si].Items[ii]
			item.UnitCost *= t.Factor
			if err := finiteResult(t.Name(), item.ID+" unit cost", item.UnitCost); err != nil {
				return base, err
			}
		}
	}
	return out, nil
}
