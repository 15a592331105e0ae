package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// NumberField is a labelled numeric text input. Text that does not parse
// as a finite number reads as 0.
type NumberField struct {
	Label  string
	Prefix string
	Suffix string
	Width  int

	input textinput.Model
}

// NewNumberField creates an unfocused field
func NewNumberField(label, prefix, suffix string) *NumberField {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 16
	ti.Width = 12
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &NumberField{
		Label:  label,
		Prefix: prefix,
		Suffix: suffix,
		Width:  26,
		input:  ti,
	}
}

// ParseValue converts field text to a number, coercing anything unusable to 0
func ParseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Value returns the current numeric value
func (f *NumberField) Value() float64 {
	return ParseValue(f.input.Value())
}

// Text returns the raw field text
func (f *NumberField) Text() string {
	return f.input.Value()
}

// SetValue replaces the field text. Zero shows as an empty field.
func (f *NumberField) SetValue(v float64) {
	if v == 0 {
		f.SetText("")
		return
	}
	f.SetText(output.FormatInput(v))
}

// SetText replaces the field text verbatim
func (f *NumberField) SetText(s string) {
	f.input.SetValue(s)
	f.input.CursorEnd()
}

// SetInputWidth sets the visible width of the input
func (f *NumberField) SetInputWidth(w int) {
	f.input.Width = w
}

// Focus gives the field keyboard focus
func (f *NumberField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes keyboard focus
func (f *NumberField) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has focus
func (f *NumberField) Focused() bool {
	return f.input.Focused()
}

// Update passes a message to the underlying text input
func (f *NumberField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label and input on one line
func (f *NumberField) View() string {
	labelStyle := tuistyles.LabelStyle
	if f.Focused() {
		labelStyle = tuistyles.FocusedLabelStyle
	}
	label := labelStyle.Width(f.Width).Render(f.Label)

	value := f.input.View()
	if f.Prefix != "" {
		value = tuistyles.MutedStyle.Render(f.Prefix) + value
	}
	if f.Suffix != "" {
		value += " " + tuistyles.MutedStyle.Render(f.Suffix)
	}
	return label + value
}

// InputView renders only the input, for table cells
func (f *NumberField) InputView() string {
	return f.input.View()
}
