package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/tui/tuimsg"
)

// run feeds msg to the model and then every message produced by the
// returned commands, depth first.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	return drain(t, m, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
		return m
	default:
		return run(t, m, msg)
	}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = run(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return run(t, m, tea.KeyMsg{Type: k})
}

func TestNewModel(t *testing.T) {
	m := NewModel("")

	assert.Equal(t, SceneWage, m.currentScene)
	assert.Equal(t, domain.DefaultState(), m.State())
	assert.Zero(t, m.Results().FinalHourlyRate)
	assert.Nil(t, m.Init(), "No file to load")
}

func TestTypingRecalculates(t *testing.T) {
	m := NewModel("")

	m = typeText(t, m, "1000")
	assert.Equal(t, 1000.0, m.State().Wage.WeeklyGross)
	assert.InDelta(t, 52000, m.Results().AnnualBaseWage, 1e-9)

	// tab moves to holiday loading
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "17.5")
	assert.Equal(t, 17.5, m.State().Wage.HolidayLoad)
}

func TestUnparsableInputIsZero(t *testing.T) {
	m := NewModel("")
	m = typeText(t, m, "12")
	require.Equal(t, 12.0, m.State().Wage.WeeklyGross)

	m = typeText(t, m, "x")
	assert.Zero(t, m.State().Wage.WeeklyGross)
}

func TestNavigation(t *testing.T) {
	m := NewModel("")

	m = press(t, m, tea.KeyCtrlP)
	assert.Equal(t, SceneWage, m.currentScene, "No step before the first")

	for _, want := range []Scene{SceneTime, SceneOverheads, SceneFinal, SceneFinal} {
		m = press(t, m, tea.KeyCtrlN)
		assert.Equal(t, want, m.currentScene)
	}

	m = press(t, m, tea.KeyCtrlP)
	assert.Equal(t, SceneOverheads, m.currentScene)

	m = press(t, m, tea.KeyF1)
	assert.Equal(t, SceneHelp, m.currentScene)
	m = press(t, m, tea.KeyEsc)
	assert.Equal(t, SceneOverheads, m.currentScene)
}

func TestOverheadEditing(t *testing.T) {
	m := NewModel("")
	m = run(t, m, NavigateMsg{Scene: SceneOverheads})

	// first row, qty column
	m = typeText(t, m, "2")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "100")

	item := m.State().Overheads[0].Items[0]
	assert.Equal(t, 2.0, item.Qty)
	assert.Equal(t, 100.0, item.UnitCost)
	assert.InDelta(t, 200, m.Results().TotalAnnualExpenses, 1e-9)
}

func TestResetConfirmation(t *testing.T) {
	m := NewModel("")
	m = typeText(t, m, "500")
	m = press(t, m, tea.KeyCtrlN)

	m = press(t, m, tea.KeyCtrlR)
	assert.True(t, m.confirmReset)
	assert.Contains(t, m.View(), "Are you sure you want to reset everything?")

	m = typeText(t, m, "n")
	assert.False(t, m.confirmReset)
	assert.Equal(t, 500.0, m.State().Wage.WeeklyGross, "Declining keeps inputs")

	m = press(t, m, tea.KeyCtrlR)
	m = typeText(t, m, "y")
	assert.Equal(t, domain.DefaultState(), m.State())
	assert.Equal(t, SceneWage, m.currentScene)
}

func TestExportRequiresStudent(t *testing.T) {
	dir := t.TempDir()
	m := NewModel("", WithExportDir(dir))
	m.now = func() time.Time { return time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC) }
	m = run(t, m, NavigateMsg{Scene: SceneFinal})

	m = press(t, m, tea.KeyCtrlS)
	assert.True(t, m.statusError)
	assert.Contains(t, m.status, "student name")

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "Sam Carter")
	m = press(t, m, tea.KeyEnter)

	require.False(t, m.statusError, m.status)
	path := filepath.Join(dir, "labour_rate_report_20260304_093000.html")
	assert.Equal(t, "Report written to "+path, m.status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sam Carter")
}

func TestWithStudentOption(t *testing.T) {
	m := NewModel("", WithStudent("Alex"))
	assert.Equal(t, "Alex", m.finalModel.Student())
}

func TestStateLoaded(t *testing.T) {
	m := NewModel("")
	state := domain.DefaultState()
	state.Wage.WeeklyGross = 1000
	state.Time.StandardHoursPerDay = 8

	m = run(t, m, StateLoadedMsg{State: &state, Path: "x.yaml"})

	assert.Equal(t, 1000.0, m.State().Wage.WeeklyGross)
	assert.InDelta(t, 2080, m.Results().AnnualBillableHours, 1e-9)
	assert.Equal(t, "Loaded x.yaml", m.status)
	assert.Equal(t, 1000.0, m.wageModel.Value(domain.ParamWeeklyGross), "Fields show loaded values")
}

func TestLoadStateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wage:\n  weekly_gross: 800\n"), 0644))

	msg := loadStateCmd(path)()
	loaded, ok := msg.(StateLoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 800.0, loaded.State.Wage.WeeklyGross)

	msg = loadStateCmd(filepath.Join(t.TempDir(), "missing.yaml"))()
	assert.IsType(t, ErrorMsg{}, msg)
}

func TestErrorScreen(t *testing.T) {
	m := NewModel("")
	m = run(t, m, tuimsg.OverheadChangedMsg{Section: 99, Item: 0, Field: domain.FieldQty, Value: 1})
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")

	m = typeText(t, m, "a")
	assert.NoError(t, m.err)
	assert.Zero(t, m.State().Wage.WeeklyGross, "The dismissing key is not typed")
}

func TestViewShowsSummaryCards(t *testing.T) {
	m := NewModel("")
	m = run(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})

	view := m.View()
	assert.Contains(t, view, "Labour Costing Calculator")
	assert.Contains(t, view, "TOTAL LABOUR COST BREAKDOWN")
	assert.Contains(t, view, "Disclaimer:")

	m = press(t, m, tea.KeyCtrlN)
	view = m.View()
	assert.Contains(t, view, "ANNUAL BILLABLE HOURS")
	assert.True(t, strings.Contains(view, "(52 - Total Leave Weeks)"))
}
