package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/components"
	"github.com/rgehrsitz/labourrate/internal/tui/tuimsg"
	"github.com/rgehrsitz/labourrate/internal/tui/tuistyles"
)

var (
	upRowKey     = key.NewBinding(key.WithKeys("up"))
	downRowKey   = key.NewBinding(key.WithKeys("down", "enter"))
	switchColKey = key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right"))
)

type cellRef struct {
	section int
	item    int
}

// OverheadsModel edits quantity and unit cost for every overhead line
type OverheadsModel struct {
	sections []domain.OverheadSection
	rows     []cellRef
	row      int
	field    domain.OverheadField
	editor   *components.NumberField
	width    int
}

// NewOverheadsModel creates the overheads table scene
func NewOverheadsModel() *OverheadsModel {
	m := &OverheadsModel{
		field:  domain.FieldQty,
		editor: components.NewNumberField("", "", ""),
	}
	m.editor.SetInputWidth(7)
	m.editor.Focus()
	return m
}

// SetState replaces the table contents and reloads the focused cell
func (m *OverheadsModel) SetState(state domain.CalculatorState) {
	m.Refresh(state)
	m.rows = m.rows[:0]
	for si, section := range m.sections {
		for ii := range section.Items {
			m.rows = append(m.rows, cellRef{si, ii})
		}
	}
	if m.row >= len(m.rows) {
		m.row = 0
	}
	m.loadEditor()
}

// Refresh updates displayed totals without touching the cell being edited
func (m *OverheadsModel) Refresh(state domain.CalculatorState) {
	m.sections = state.Clone().Overheads
}

// SetSize updates the scene width
func (m *OverheadsModel) SetSize(width, height int) {
	m.width = width
}

// Cursor returns the focused section, item and column
func (m *OverheadsModel) Cursor() (int, int, domain.OverheadField) {
	if len(m.rows) == 0 {
		return -1, -1, m.field
	}
	ref := m.rows[m.row]
	return ref.section, ref.item, m.field
}

func (m *OverheadsModel) loadEditor() {
	if len(m.rows) == 0 {
		m.editor.SetText("")
		return
	}
	ref := m.rows[m.row]
	item := m.sections[ref.section].Items[ref.item]
	if m.field == domain.FieldQty {
		m.editor.SetValue(item.Qty)
	} else {
		m.editor.SetValue(item.UnitCost)
	}
}

// Update handles messages for the overheads table
func (m *OverheadsModel) Update(msg tea.Msg) (*OverheadsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.rows) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, upRowKey):
		m.row = (m.row - 1 + len(m.rows)) % len(m.rows)
		m.loadEditor()
		return m, nil
	case key.Matches(keyMsg, downRowKey):
		m.row = (m.row + 1) % len(m.rows)
		m.loadEditor()
		return m, nil
	case key.Matches(keyMsg, switchColKey):
		if m.field == domain.FieldQty {
			m.field = domain.FieldUnitCost
		} else {
			m.field = domain.FieldQty
		}
		m.loadEditor()
		return m, nil
	}

	before := m.editor.Value()
	cmd := m.editor.Update(msg)
	after := m.editor.Value()
	if after == before {
		return m, cmd
	}

	ref := m.rows[m.row]
	changed := tuimsg.OverheadChangedMsg{Section: ref.section, Item: ref.item, Field: m.field, Value: after}
	return m, tea.Batch(cmd, func() tea.Msg { return changed })
}

// View renders one table per section with its subtotal
func (m *OverheadsModel) View() string {
	if len(m.sections) == 0 {
		return tuistyles.InfoStyle.Render("No overhead items")
	}

	const nameW, qtyW, costW, totalW = 30, 10, 14, 14
	cell := func(s string, w int, right bool) string {
		st := lipgloss.NewStyle().Width(w)
		if right {
			st = st.Align(lipgloss.Right)
		}
		return st.Render(s)
	}

	focusSection, focusItem, focusField := m.Cursor()
	var blocks []string
	for si, section := range m.sections {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ChartColor(si + 3)).Render(section.Title))
		b.WriteString("\n")
		b.WriteString(tuistyles.TableHeaderStyle.Render(
			cell("Expense Item", nameW, false) + cell("Qty", qtyW, true) + cell("Unit Cost ($)", costW, true) + cell("Total", totalW, true)))
		b.WriteString("\n")

		for ii, item := range section.Items {
			qty := output.FormatInput(item.Qty)
			cost := output.FormatNumber(item.UnitCost)
			style := tuistyles.TableCellStyle
			if si == focusSection && ii == focusItem {
				style = tuistyles.TableHighlightStyle
				if focusField == domain.FieldQty {
					qty = "[" + m.editor.InputView() + "]"
				} else {
					cost = "[" + m.editor.InputView() + "]"
				}
			}
			b.WriteString(style.Render(cell(item.Name, nameW, false)))
			b.WriteString(cell(qty, qtyW, true))
			b.WriteString(cell(cost, costW, true))
			b.WriteString(style.Render(cell(output.FormatCurrency(item.Total()), totalW, true)))
			b.WriteString("\n")
		}
		b.WriteString(tuistyles.BoldRowStyle.Render(
			cell("Subtotal", nameW+qtyW+costW, false) + cell(output.FormatCurrency(section.Subtotal()), totalW, true)))
		blocks = append(blocks, b.String())
	}

	hint := tuistyles.MutedStyle.Render(fmt.Sprintf("↑/↓ row • tab column (%s) • type to edit", columnName(focusField)))
	return strings.Join(blocks, "\n\n") + "\n\n" + hint
}

func columnName(f domain.OverheadField) string {
	if f == domain.FieldUnitCost {
		return "unit cost"
	}
	return "qty"
}
