package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/tui"
)

// fileLogger sends engine logs through the standard logger, which
// tea.LogToFile points at debug.log while the TUI owns the terminal
type fileLogger struct{}

func (fileLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (fileLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (fileLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (fileLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

func main() {
	// Optional input file; without one the calculator starts blank
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Printf("Error: Config file not found: %s\n", configPath)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	engine := calculation.NewCalculationEngine()
	if settings.Debug {
		f, err := tea.LogToFile("debug.log", "labourrate")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		engine.SetLogger(fileLogger{})
		engine.Debug = true
	}

	model := tui.NewModel(configPath,
		tui.WithStudent(settings.Student),
		tui.WithEngine(engine),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
