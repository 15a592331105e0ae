package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/components"
	"github.com/rgehrsitz/labourrate/internal/tui/tuimsg"
	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

var (
	switchFocusKey = key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"))
	exportKey      = key.NewBinding(key.WithKeys("ctrl+s"))
	submitKey      = key.NewBinding(key.WithKeys("enter"))
)

const (
	focusMarkup = iota
	focusStudent
)

// FinalModel shows the sell rate breakdown, edits the markup and exports the report
type FinalModel struct {
	markup  *components.NumberField
	student textinput.Model
	focus   int

	state   domain.CalculatorState
	results domain.CalculationResults
	width   int
}

// NewFinalModel creates the final wizard step
func NewFinalModel() *FinalModel {
	info, _ := domain.LookupParameter(domain.ParamMarkupPercent)
	student := textinput.New()
	student.Placeholder = "Full name..."
	student.CharLimit = 80
	student.Width = 32
	student.Prompt = ""
	student.Cursor.SetMode(cursor.CursorStatic)

	m := &FinalModel{
		markup:  components.NewNumberField(info.Label+" (%)", "", info.Suffix),
		student: student,
	}
	m.markup.Focus()
	return m
}

// SetState loads the markup field from state
func (m *FinalModel) SetState(state domain.CalculatorState) {
	m.state = state
	m.markup.SetValue(state.MarkupPercent)
}

// SetResults updates the figures shown
func (m *FinalModel) SetResults(state domain.CalculatorState, results domain.CalculationResults) {
	m.state = state
	m.results = results
}

// SetStudent replaces the student name
func (m *FinalModel) SetStudent(name string) {
	m.student.SetValue(name)
}

// Student returns the trimmed student name
func (m *FinalModel) Student() string {
	return strings.TrimSpace(m.student.Value())
}

// SetSize updates the scene width
func (m *FinalModel) SetSize(width, height int) {
	m.width = width
}

// Update handles messages for the final step
func (m *FinalModel) Update(msg tea.Msg) (*FinalModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, switchFocusKey):
		if m.focus == focusMarkup {
			m.focus = focusStudent
			m.markup.Blur()
			return m, m.student.Focus()
		}
		m.focus = focusMarkup
		m.student.Blur()
		return m, m.markup.Focus()

	case key.Matches(keyMsg, exportKey),
		m.focus == focusStudent && key.Matches(keyMsg, submitKey):
		student := m.Student()
		if student == "" {
			return m, func() tea.Msg {
				return tuimsg.StatusMsg{Text: "Enter a student name before generating the report", IsError: true}
			}
		}
		return m, func() tea.Msg { return tuimsg.ExportRequestedMsg{Student: student} }
	}

	if m.focus == focusStudent {
		var cmd tea.Cmd
		m.student, cmd = m.student.Update(msg)
		return m, cmd
	}

	before := m.markup.Value()
	cmd := m.markup.Update(msg)
	after := m.markup.Value()
	if after == before {
		return m, cmd
	}
	changed := tuimsg.ParameterChangedMsg{Key: domain.ParamMarkupPercent, Value: after}
	return m, tea.Batch(cmd, func() tea.Msg { return changed })
}

// View renders the rate cards, charts and report controls
func (m *FinalModel) View() string {
	r := m.results

	costBasis := components.NewMetricCard("INTERNAL COST BASIS", output.FormatRate(r.CostBasePerHour())).
		WithWidth(34)
	parts := components.NewSummaryCard("Components", tuistyles.ColorPrimary).
		AddRow("Hourly Labour Cost", output.FormatCurrency(r.LabourCostPerHour)).
		AddRow("Hourly Overhead Cost", output.FormatCurrency(r.OverheadCostPerHour)).
		AddTotal("Subtotal", output.FormatCurrency(r.CostBasePerHour()), "")
	parts.Width = 34
	left := lipgloss.JoinVertical(lipgloss.Left, costBasis.Render(), parts.Render())

	sellRate := components.NewMetricCard("FINAL COMMERCIAL SELL RATE", output.FormatCurrency(r.FinalHourlyRate)).
		WithDescription(domain.GSTNote).
		WithColor(tuistyles.ColorSecondary).
		WithWidth(40)
	multiplier := tuistyles.MutedStyle.Render("x " + output.FormatMultiplier(m.state.MarkupPercent) + " multiplier")
	right := lipgloss.JoinVertical(lipgloss.Left, m.markup.View(), multiplier, sellRate.Render())

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	breakdown := output.NewBreakdown(m.state, r)
	charts := lipgloss.JoinVertical(lipgloss.Left,
		components.NewBarChart("Labour Cost Breakdown", breakdown.Labour).Render(),
		"",
		components.NewBarChart("Overheads Breakdown", breakdown.Overheads).Render(),
		"",
		components.NewBarChart("Final Rate Detail", breakdown.Rate).Hourly().Render(),
	)

	labelStyle := tuistyles.LabelStyle
	if m.focus == focusStudent {
		labelStyle = tuistyles.FocusedLabelStyle
	}
	report := labelStyle.Render("Enter student name for report: ") + m.student.View() + "\n" +
		tuistyles.MutedStyle.Render("enter or ctrl+s: generate HTML report")

	return lipgloss.JoinVertical(lipgloss.Left, top, "", charts, "", report)
}
