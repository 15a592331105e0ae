package tui

import (
	"github.com/rgehrsitz/labourrate/internal/domain"
)

// Scene represents the screens of the wizard
type Scene int

const (
	SceneWage Scene = iota
	SceneTime
	SceneOverheads
	SceneFinal
	SceneHelp
)

// wizardScenes is the step order; help sits outside it
var wizardScenes = []Scene{SceneWage, SceneTime, SceneOverheads, SceneFinal}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// StateLoadedMsg signals an input file has been read
type StateLoadedMsg struct {
	State *domain.CalculatorState
	Path  string
}

// ReportExportedMsg signals the report file was written
type ReportExportedMsg struct {
	Path string
	Err  error
}
