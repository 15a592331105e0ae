package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

// BarChart renders a breakdown as horizontal share bars, one per slice
type BarChart struct {
	Title    string
	Slices   []output.Slice
	BarWidth int
	// PerHour marks values as hourly amounts
	PerHour bool
}

// NewBarChart creates a chart for a breakdown
func NewBarChart(title string, slices []output.Slice) *BarChart {
	return &BarChart{Title: title, Slices: slices, BarWidth: 20}
}

// WithBarWidth sets the bar width in cells
func (c *BarChart) WithBarWidth(width int) *BarChart {
	c.BarWidth = width
	return c
}

// Hourly formats values as hourly rates
func (c *BarChart) Hourly() *BarChart {
	c.PerHour = true
	return c
}

// Render returns the chart, or a placeholder when there is nothing to show
func (c *BarChart) Render() string {
	var b strings.Builder
	b.WriteString(tuistyles.MetricLabelStyle.Render(strings.ToUpper(c.Title)))
	b.WriteString("\n")

	if len(c.Slices) == 0 {
		b.WriteString(tuistyles.InfoStyle.Render("No data to display"))
		return b.String()
	}

	labelWidth := 0
	for _, s := range c.Slices {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	for i, s := range c.Slices {
		bar := lipgloss.NewStyle().Foreground(tuistyles.ChartColor(i)).Render(output.Bar(s.Share, c.BarWidth))
		value := output.FormatCurrency(s.Value)
		if c.PerHour {
			value = output.FormatRate(s.Value)
		}
		fmt.Fprintf(&b, "%-*s %s %6s%% %s\n", labelWidth, s.Label, bar, output.FormatNumber(s.Share), tuistyles.MutedStyle.Render(value))
	}
	return strings.TrimRight(b.String(), "\n")
}
