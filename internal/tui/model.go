package tui

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/output"
	"github.com/rgehrsitz/labourrate/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Inputs and derived figures
	configPath string
	state      domain.CalculatorState
	results    domain.CalculationResults
	calcEngine *calculation.CalculationEngine

	// Scene models
	wageModel      *scenes.FormModel
	timeModel      *scenes.FormModel
	overheadsModel *scenes.OverheadsModel
	finalModel     *scenes.FinalModel

	confirmReset bool
	status       string
	statusError  bool
	exportDir    string
	now          func() time.Time

	// Error state
	err error
}

// Option configures a Model
type Option func(*Model)

// WithExportDir sets where reports are written
func WithExportDir(dir string) Option {
	return func(m *Model) { m.exportDir = dir }
}

// WithStudent pre-fills the student name
func WithStudent(name string) Option {
	return func(m *Model) { m.finalModel.SetStudent(name) }
}

// WithEngine replaces the calculation engine
func WithEngine(engine *calculation.CalculationEngine) Option {
	return func(m *Model) {
		if engine != nil {
			m.calcEngine = engine
		}
	}
}

// NewModel creates a new application model. configPath may be empty, in which
// case the wizard starts from the blank default state.
func NewModel(configPath string, opts ...Option) Model {
	m := Model{
		currentScene:   SceneWage,
		configPath:     configPath,
		calcEngine:     calculation.NewCalculationEngine(),
		wageModel:      scenes.NewWageForm(),
		timeModel:      scenes.NewTimeForm(),
		overheadsModel: scenes.NewOverheadsModel(),
		finalModel:     scenes.NewFinalModel(),
		exportDir:      ".",
		now:            time.Now,
		width:          100,
		height:         40,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.loadState(domain.DefaultState())
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	return loadStateCmd(m.configPath)
}

// State returns the current calculator inputs
func (m Model) State() domain.CalculatorState {
	return m.state
}

// Results returns the figures for the current inputs
func (m Model) Results() domain.CalculationResults {
	return m.results
}

// loadStateCmd returns a command that loads an input file
func loadStateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		state, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return StateLoadedMsg{State: state, Path: path}
	}
}

// exportReportCmd writes the HTML report for the current inputs
func exportReportCmd(state domain.CalculatorState, results domain.CalculationResults, student, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		report := output.NewReport(state, results, student, now)
		path := filepath.Join(dir, output.ReportFilename("html", now))
		if err := output.WriteFormattedTo(output.HTMLFormatter{}, report, path); err != nil {
			return ReportExportedMsg{Err: err}
		}
		return ReportExportedMsg{Path: path}
	}
}

// loadState replaces the inputs and reloads every scene
func (m *Model) loadState(state domain.CalculatorState) {
	m.state = state.Clone()
	m.wageModel.SetState(m.state)
	m.timeModel.SetState(m.state)
	m.overheadsModel.SetState(m.state)
	m.finalModel.SetState(m.state)
	m.recalculate()
}

// recalculate refreshes results after any input change
func (m *Model) recalculate() {
	results, err := m.calcEngine.Calculate(context.Background(), m.state)
	if err != nil {
		m.err = err
		return
	}
	m.results = results
	m.overheadsModel.Refresh(m.state)
	m.finalModel.SetResults(m.state, m.results)
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneWage, SceneTime, SceneOverheads, SceneFinal:
		return domain.Steps[s]
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Heading is the title shown above a step
func (s Scene) Heading() string {
	switch s {
	case SceneWage:
		return "Wage Information"
	case SceneTime:
		return "Working Time Parameters"
	case SceneOverheads:
		return "Annual Overheads"
	case SceneFinal:
		return "Final Rate Breakdown"
	default:
		return s.String()
	}
}
