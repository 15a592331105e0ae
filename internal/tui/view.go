package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/components"
	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneWage:
		content = m.withSummary(m.wageModel.View(), m.labourSummary())
	case SceneTime:
		content = m.withSummary(m.timeModel.View(), m.hoursSummary())
	case SceneOverheads:
		content = m.withSummary(m.overheadsModel.View(), m.overheadsSummary())
	case SceneFinal:
		content = m.finalModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar and disclaimer
func (m Model) renderApp(content string) string {
	heading := HeadingStyle.Render(m.currentScene.Heading())
	body := lipgloss.JoinVertical(lipgloss.Left, heading, content)

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		body,
		"",
		m.renderStatusLine(),
		m.renderStatusBar(),
		MutedStyle.Width(max(40, m.width-4)).Render("Disclaimer: "+domain.Disclaimer),
	))
}

// renderTitleBar renders the application title and step indicator
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Labour Costing Calculator")
	subtitle := SubtitleStyle.Render(domain.CourseTitle)

	current := 0
	for i, s := range wizardScenes {
		if s == m.currentScene {
			current = i
		}
	}
	if m.currentScene == SceneHelp {
		current = -1
	}
	steps := components.NewStepIndicator(domain.Steps, current).Render()

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, steps)
}

func (m Model) renderStatusLine() string {
	if m.confirmReset {
		return ErrorStyle.Render("Are you sure you want to reset everything? (y/n)")
	}
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return ErrorStyle.Render(m.status)
	}
	return SuccessStyle.Render(m.status)
}

// renderStatusBar renders the bottom bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := make([]string, 0, len(keys.ShortHelp()))
	for _, b := range keys.ShortHelp() {
		shortcuts = append(shortcuts, formatShortcut(b.Help().Key, b.Help().Desc))
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) withSummary(form, summary string) string {
	if m.width < 110 {
		return lipgloss.JoinVertical(lipgloss.Left, form, "", summary)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, form, "    ", summary)
}

func (m Model) labourSummary() string {
	r := m.results
	return components.NewSummaryCard("Total Labour Cost Breakdown", tuistyles.ColorPrimary).
		AddRow("Annual Base Wage", output.FormatCurrency(r.AnnualBaseWage)).
		AddRow("Leave Loading", output.FormatCurrency(r.HolidayPayAmount)).
		AddRow("Allowances", output.FormatCurrency(r.Allowances())).
		AddRow("Insurance (WorkCover)", output.FormatCurrency(r.WorkCoverAmount)).
		AddRow("Super & LSL", output.FormatCurrency(r.SuperAndLSL())).
		AddTotal("TOTAL LABOUR COST", output.FormatCurrency(r.TotalLabourCost), "").
		Render()
}

func (m Model) hoursSummary() string {
	r := m.results
	return components.NewSummaryCard("Annual Billable Hours", tuistyles.ColorSecondary).
		AddRow("Total Leave Weeks", output.FormatNumber(r.TotalLeaveWeeks)).
		AddRow("Billable Hours Per Week", output.FormatNumber(r.BillableHoursPerWeek)).
		AddTotal("ANNUAL BILLABLE HOURS", output.FormatNumber(r.AnnualBillableHours),
			"(52 - Total Leave Weeks) * Billable Hours Per Week").
		Render()
}

func (m Model) overheadsSummary() string {
	r := m.results
	card := components.NewSummaryCard("Hourly Overheads Summary", tuistyles.ColorAccent)
	for _, section := range m.state.Overheads {
		card.AddRow(section.Title, output.FormatCurrency(section.Subtotal()))
	}
	return card.
		AddRow("Total Annual Expenses", output.FormatCurrency(r.TotalAnnualExpenses)).
		AddRow("Annual Billable Hours", output.FormatNumber(r.AnnualBillableHours)).
		AddTotal("HOURLY OVERHEADS", output.FormatCurrency(r.OverheadCostPerHour), "").
		Render()
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"ctrl+n / pgdown", "Next step"},
		{"ctrl+p / pgup", "Previous step"},
		{"tab / ↑ / ↓", "Move between fields"},
		{"←/→ or tab", "Switch overhead column"},
		{"ctrl+s", "Generate HTML report (final step)"},
		{"ctrl+r", "Reset everything"},
		{"f1 / esc", "Close help"},
		{"ctrl+c", "Quit"},
	}
	var b strings.Builder
	b.WriteString("Type numbers directly into fields. Anything that is not a number counts as 0.\n\n")
	for _, r := range rows {
		b.WriteString(HelpKeyStyle.Width(18).Render(r[0]))
		b.WriteString(HelpDescStyle.Render(r[1]))
		b.WriteString("\n")
	}
	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}
