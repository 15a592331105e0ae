package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// SummaryRow is one labelled figure on a summary card
type SummaryRow struct {
	Label string
	Value string
	Bold  bool
	Hint  string
}

// SummaryCard lists step results under a title
type SummaryCard struct {
	Title  string
	Rows   []SummaryRow
	Width  int
	Accent lipgloss.Color
}

// NewSummaryCard creates an empty card
func NewSummaryCard(title string, accent lipgloss.Color) *SummaryCard {
	return &SummaryCard{Title: title, Width: 52, Accent: accent}
}

// AddRow appends a row
func (c *SummaryCard) AddRow(label, value string) *SummaryCard {
	c.Rows = append(c.Rows, SummaryRow{Label: label, Value: value})
	return c
}

// AddTotal appends an emphasised row with an optional hint line
func (c *SummaryCard) AddTotal(label, value, hint string) *SummaryCard {
	c.Rows = append(c.Rows, SummaryRow{Label: label, Value: value, Bold: true, Hint: hint})
	return c
}

// Render returns the styled card
func (c *SummaryCard) Render() string {
	inner := c.Width - 4
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(c.Accent).Render(strings.ToUpper(c.Title)))
	b.WriteString("\n")

	for _, row := range c.Rows {
		style := tuistyles.LabelStyle
		if row.Bold {
			style = tuistyles.BoldRowStyle
			b.WriteString(tuistyles.MutedStyle.Render(strings.Repeat("─", inner)))
			b.WriteString("\n")
		}
		gap := max(1, inner-lipgloss.Width(row.Label)-lipgloss.Width(row.Value))
		b.WriteString(style.Render(row.Label + strings.Repeat(" ", gap) + row.Value))
		b.WriteString("\n")
		if row.Hint != "" {
			b.WriteString(tuistyles.MutedStyle.Italic(true).Render(row.Hint))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Accent).
		Padding(0, 1).
		Width(c.Width).
		Render(strings.TrimRight(b.String(), "\n"))
}
