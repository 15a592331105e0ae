package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/tui/components"
	"github.com/rgehrsitz/labourrate/internal/tui/tuimsg"
)

var (
	nextFieldKey = key.NewBinding(key.WithKeys("down", "tab", "enter"))
	prevFieldKey = key.NewBinding(key.WithKeys("up", "shift+tab"))
)

// FormModel edits a fixed list of calculator parameters, one field per line
type FormModel struct {
	keys    []domain.ParameterKey
	fields  []*components.NumberField
	focused int
	width   int
}

// NewFormModel builds a field for each parameter key. Unknown keys are skipped.
func NewFormModel(keys ...domain.ParameterKey) *FormModel {
	m := &FormModel{}
	for _, k := range keys {
		info, err := domain.LookupParameter(k)
		if err != nil {
			continue
		}
		m.keys = append(m.keys, k)
		m.fields = append(m.fields, components.NewNumberField(info.Label, info.Prefix, info.Suffix))
	}
	if len(m.fields) > 0 {
		m.fields[0].Focus()
	}
	return m
}

// NewWageForm is the first wizard step
func NewWageForm() *FormModel {
	return NewFormModel(
		domain.ParamWeeklyGross,
		domain.ParamHolidayLoad,
		domain.ParamTravelDays,
		domain.ParamTravelHours,
		domain.ParamFaresAllowance,
		domain.ParamWorkCover,
		domain.ParamSuperannuation,
		domain.ParamLSL,
	)
}

// NewTimeForm is the second wizard step
func NewTimeForm() *FormModel {
	return NewFormModel(
		domain.ParamAnnualLeaveDays,
		domain.ParamSickDays,
		domain.ParamPublicHolidays,
		domain.ParamStandardHoursPerDay,
		domain.ParamLostHoursPerDay,
	)
}

// SetState loads field text from state
func (m *FormModel) SetState(state domain.CalculatorState) {
	for i, k := range m.keys {
		v, err := state.Parameter(k)
		if err != nil {
			continue
		}
		m.fields[i].SetValue(v)
	}
}

// SetSize updates the scene width
func (m *FormModel) SetSize(width, height int) {
	m.width = width
}

// Focused returns the key of the focused field
func (m *FormModel) Focused() domain.ParameterKey {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[m.focused]
}

// Value returns the parsed value of a field
func (m *FormModel) Value(k domain.ParameterKey) float64 {
	for i, fk := range m.keys {
		if fk == k {
			return m.fields[i].Value()
		}
	}
	return 0
}

// Update handles messages for the form
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.fields) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, nextFieldKey):
		return m, m.moveFocus(1)
	case key.Matches(keyMsg, prevFieldKey):
		return m, m.moveFocus(-1)
	}

	field := m.fields[m.focused]
	before := field.Value()
	cmd := field.Update(msg)
	after := field.Value()
	if after == before {
		return m, cmd
	}

	changed := tuimsg.ParameterChangedMsg{Key: m.keys[m.focused], Value: after}
	return m, tea.Batch(cmd, func() tea.Msg { return changed })
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	m.fields[m.focused].Blur()
	m.focused = (m.focused + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.focused].Focus()
}

// View renders the fields
func (m *FormModel) View() string {
	lines := make([]string, len(m.fields))
	for i, f := range m.fields {
		lines[i] = f.View()
	}
	return strings.Join(lines, "\n")
}
