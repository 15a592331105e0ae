package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// ErrNoCostBase is returned when the state has no cost per hour to mark up
var ErrNoCostBase = errors.New("cost base per hour is zero; no markup can reach the target rate")

// RequiredMarkup returns the markup percent that makes the final hourly rate
// equal targetRate for the given state.
func RequiredMarkup(state domain.CalculatorState, targetRate float64) (float64, error) {
	r := Compute(state)
	costBase := r.CostBasePerHour()
	if costBase == 0 {
		return 0, ErrNoCostBase
	}
	return (targetRate/costBase - 1) * percentDivisor, nil
}

// ApplyTargetRate sets the markup needed to reach targetRate and recomputes
func ApplyTargetRate(state domain.CalculatorState, targetRate float64) (domain.CalculatorState, domain.CalculationResults, error) {
	percent, err := RequiredMarkup(state, targetRate)
	if err != nil {
		return state, domain.CalculationResults{}, fmt.Errorf("target rate %.2f: %w", targetRate, err)
	}
	adjusted := state.WithMarkup(percent)
	return adjusted, Compute(adjusted), nil
}
