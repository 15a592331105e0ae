package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// CreateExampleConfiguration returns the default catalogue filled in for a
// typical plumbing tradesperson, suitable as a starting input file.
func CreateExampleConfiguration() domain.CalculatorState {
	state := domain.DefaultState()
	state.Wage = domain.WageData{
		WeeklyGross:    1000,
		HolidayLoad:    17.5,
		WorkCover:      5,
		Superannuation: 11,
		LSL:            1,
	}
	state.Time = domain.TimeData{
		AnnualLeaveDays:     20,
		SickDays:            10,
		PublicHolidays:      10,
		StandardHoursPerDay: 8,
	}
	state.MarkupPercent = 20

	lines := map[string][2]float64{
		"i1": {1, 1800},  // plumbers insurance
		"i3": {1, 1200},  // vehicle insurance
		"v1": {12, 650},  // lease
		"v2": {1, 850},   // rego
		"v3": {52, 90},   // fuel
		"o4": {12, 85},   // mobile
		"o5": {1, 400},   // office supplies
	}
	for id, line := range lines {
		si, ii, ok := state.FindOverhead(id)
		if !ok {
			continue
		}
		state.Overheads[si].Items[ii].Qty = line[0]
		state.Overheads[si].Items[ii].UnitCost = line[1]
	}

	return state
}

// MarshalConfiguration renders state as YAML in the input file layout
func MarshalConfiguration(state domain.CalculatorState) ([]byte, error) {
	data, err := yaml.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

// SaveConfiguration writes state to path as YAML
func SaveConfiguration(state domain.CalculatorState, path string) error {
	data, err := MarshalConfiguration(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
