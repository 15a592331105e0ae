package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/labourrate/internal/domain"
)

// Format identifies an input file encoding
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatHJSON Format = "hjson"
)

// FormatForPath picks the input format from a file extension. Unknown extensions read as YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".hjson":
		return FormatHJSON
	default:
		return FormatYAML
	}
}

// InputParser handles parsing of calculator input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculator state from a YAML, JSON or HJSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculatorState, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data, FormatForPath(filename))
}

// LoadFromBytes parses and validates a calculator state. Numeric fields absent
// from the input stay zero.
func (ip *InputParser) LoadFromBytes(data []byte, format Format) (*domain.CalculatorState, error) {
	var state domain.CalculatorState

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatHJSON:
		if err := hjson.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("failed to parse HJSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}

	if err := ip.ValidateState(&state); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &state, nil
}

// ValidateState rejects states the calculator cannot meaningfully display.
// Negative amounts and percents over 100 are allowed; see Warnings.
func (ip *InputParser) ValidateState(state *domain.CalculatorState) error {
	if state == nil {
		return errors.New("state is required")
	}

	for _, info := range domain.Parameters() {
		v, err := state.Parameter(info.Key)
		if err != nil {
			return err
		}
		if !isFinite(v) {
			return fmt.Errorf("%s must be a finite number, got %v", info.Key, v)
		}
	}

	for i, section := range state.Overheads {
		if err := ip.validateSection(section); err != nil {
			return fmt.Errorf("overhead section %d validation failed: %w", i, err)
		}
	}

	return nil
}

func (ip *InputParser) validateSection(section domain.OverheadSection) error {
	if strings.TrimSpace(section.Title) == "" {
		return errors.New("title is required")
	}

	seen := make(map[string]bool, len(section.Items))
	for i, item := range section.Items {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("item %d in %q has no id", i, section.Title)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %q in %q", item.ID, section.Title)
		}
		seen[item.ID] = true

		if !isFinite(item.Qty) || !isFinite(item.UnitCost) {
			return fmt.Errorf("item %q in %q must have finite qty and unit cost", item.ID, section.Title)
		}
	}
	return nil
}

// Warnings lists inputs that calculate fine but are probably data-entry mistakes
func Warnings(state domain.CalculatorState) []string {
	var warnings []string

	for _, info := range domain.Parameters() {
		v, _ := state.Parameter(info.Key)
		if v < 0 {
			warnings = append(warnings, fmt.Sprintf("%s is negative (%g)", info.Label, v))
		}
		if info.Suffix == "%" && info.Key != domain.ParamMarkupPercent && v > 100 {
			warnings = append(warnings, fmt.Sprintf("%s is over 100%% (%g)", info.Label, v))
		}
	}

	if state.Time.LostHoursPerDay > state.Time.StandardHoursPerDay {
		warnings = append(warnings, "Lost hours per day exceed standard hours; billable hours will be zero")
	}
	if leaveDays := state.Time.AnnualLeaveDays + state.Time.SickDays + state.Time.PublicHolidays; leaveDays >= 260 {
		warnings = append(warnings, fmt.Sprintf("Leave totals %g days, a full working year; billable hours will be zero", leaveDays))
	}

	for _, section := range state.Overheads {
		for _, item := range section.Items {
			if item.Qty < 0 || item.UnitCost < 0 {
				warnings = append(warnings, fmt.Sprintf("%s / %s has a negative quantity or unit cost", section.Title, itemLabel(item)))
			}
		}
	}

	return warnings
}

func itemLabel(item domain.OverheadItem) string {
	if item.Name != "" {
		return item.Name
	}
	return item.ID
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
