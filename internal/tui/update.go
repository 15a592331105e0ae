package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/labourrate/internal/domain"
	"github.com/rgehrsitz/labourrate/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wageModel.SetSize(msg.Width, msg.Height)
		m.timeModel.SetSize(msg.Width, msg.Height)
		m.overheadsModel.SetSize(msg.Width, msg.Height)
		m.finalModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case StateLoadedMsg:
		if msg.State != nil {
			m.loadState(*msg.State)
			m.setStatus(fmt.Sprintf("Loaded %s", msg.Path), false)
		}
		return m, nil

	case tuimsg.ParameterChangedMsg:
		state, err := m.state.WithParameter(msg.Key, msg.Value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.state = state
		m.recalculate()
		return m, nil

	case tuimsg.OverheadChangedMsg:
		state, err := m.state.WithOverhead(msg.Section, msg.Item, msg.Field, msg.Value)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.state = state
		m.recalculate()
		return m, nil

	case tuimsg.ExportRequestedMsg:
		m.setStatus("Generating report...", false)
		return m, exportReportCmd(m.state, m.results, msg.Student, m.exportDir, m.now())

	case ReportExportedMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
		} else {
			m.setStatus("Report written to "+msg.Path, false)
		}
		return m, nil

	case tuimsg.StatusMsg:
		m.setStatus(msg.Text, msg.IsError)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	// An error screen swallows the next key
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	if m.confirmReset {
		m.confirmReset = false
		if key.Matches(msg, keys.Confirm) {
			m.loadState(domain.DefaultState())
			m.currentScene = SceneWage
			m.setStatus("Calculator reset", false)
		} else {
			m.setStatus("Reset cancelled", false)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Reset):
		m.confirmReset = true
		return m, nil

	case key.Matches(msg, keys.Help):
		if m.currentScene == SceneHelp {
			return m, navigate(m.previousScene)
		}
		return m, navigate(SceneHelp)

	case key.Matches(msg, keys.Back):
		if m.currentScene == SceneHelp {
			return m, navigate(m.previousScene)
		}

	case key.Matches(msg, keys.Next):
		if next, ok := m.stepOffset(1); ok {
			return m, navigate(next)
		}
		return m, nil

	case key.Matches(msg, keys.Prev):
		if prev, ok := m.stepOffset(-1); ok {
			return m, navigate(prev)
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// stepOffset returns the wizard step delta steps away, if there is one
func (m Model) stepOffset(delta int) (Scene, bool) {
	for i, s := range wizardScenes {
		if s == m.currentScene {
			j := i + delta
			if j < 0 || j >= len(wizardScenes) {
				return m.currentScene, false
			}
			return wizardScenes[j], true
		}
	}
	return m.currentScene, false
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneWage:
		m.wageModel, cmd = m.wageModel.Update(msg)
	case SceneTime:
		m.timeModel, cmd = m.timeModel.Update(msg)
	case SceneOverheads:
		m.overheadsModel, cmd = m.overheadsModel.Update(msg)
	case SceneFinal:
		m.finalModel, cmd = m.finalModel.Update(msg)
	}
	return m, cmd
}
