package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// MetricCard displays a single headline figure with label and caption
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Width       int
	Color       lipgloss.Color
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 30,
		Color: tuistyles.ColorPrimary,
	}
}

// WithDescription adds a caption under the value
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// WithColor sets the border and value colour
func (m *MetricCard) WithColor(c lipgloss.Color) *MetricCard {
	m.Color = c
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Foreground(m.Color).Render(m.Value)

	var desc string
	if m.Description != "" {
		desc = "\n" + tuistyles.SubtitleStyle.Italic(true).Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Color).
		Padding(0, 2).
		Align(lipgloss.Center).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + desc)
}

// RenderCompact returns an inline version without border
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
}

// MetricGrid renders multiple metric cards in a grid layout
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}

	rows := []string{}
	currentRow := []string{}

	for i, card := range cards {
		currentRow = append(currentRow, card.Render())

		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
