package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// StepIndicator shows progress through the wizard steps
type StepIndicator struct {
	Steps   []string
	Current int
}

// NewStepIndicator creates an indicator at the given step
func NewStepIndicator(steps []string, current int) *StepIndicator {
	return &StepIndicator{Steps: steps, Current: current}
}

// Percentage returns the completion percentage
func (s *StepIndicator) Percentage() float64 {
	if len(s.Steps) <= 1 {
		return 100
	}
	return float64(s.Current) / float64(len(s.Steps)-1) * 100
}

// IsComplete returns true on the last step
func (s *StepIndicator) IsComplete() bool {
	return s.Current >= len(s.Steps)-1
}

// Render returns the indicator on one line, e.g. "✓ 1 Wage ─ ● 2 Working ─ ○ 3 Annual"
func (s *StepIndicator) Render() string {
	parts := make([]string, 0, len(s.Steps))
	for i, step := range s.Steps {
		// first word only, as the header badges show
		name := step
		if fields := strings.Fields(step); len(fields) > 0 {
			name = fields[0]
		}
		var style lipgloss.Style
		var mark string
		switch {
		case i < s.Current:
			mark, style = "✓", tuistyles.SuccessStyle
		case i == s.Current:
			mark, style = "●", tuistyles.FocusedLabelStyle
		default:
			mark, style = "○", tuistyles.MutedStyle
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d %s", mark, i+1, name)))
	}
	return strings.Join(parts, tuistyles.MutedStyle.Render(" ─ "))
}
