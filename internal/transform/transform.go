package transform

import (
	"fmt"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// StateTransform defines the interface for all calculator state transformations.
// Transforms are composable, copy-on-write edits used for variant comparison,
// command-line overrides and what-if templates.
type StateTransform interface {
	// Apply returns a new state with the transformation applied. The input is never modified.
	Apply(base domain.CalculatorState) (domain.CalculatorState, error)

	// Name returns a short identifier for this transform (e.g., "set").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform can be applied to base without applying it.
	Validate(base domain.CalculatorState) error
}

// ApplyTransforms applies a sequence of transforms to a base state.
// Each transform receives the output of the previous one.
func ApplyTransforms(base domain.CalculatorState, transforms []StateTransform) (domain.CalculatorState, error) {
	current := base.Clone()

	for i, transform := range transforms {
		if transform == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// Describe joins the descriptions of a transform list for display
func Describe(transforms []StateTransform) []string {
	out := make([]string, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			out = append(out, t.Description())
		}
	}
	return out
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
