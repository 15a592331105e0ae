package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are process-level options for the CLI, server and TUI
type Settings struct {
	Addr    string // HTTP listen address
	Format  string // default output format
	Debug   bool
	Student string // default student name on reports
}

// DefaultSettings returns settings with no environment applied
func DefaultSettings() Settings {
	return Settings{
		Addr:   ":8080",
		Format: "console",
	}
}

// LoadSettings reads LABOURRATE_* variables, loading envFiles first when they exist.
// With no files given, a .env in the working directory is tried.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	if v := os.Getenv("LABOURRATE_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("LABOURRATE_FORMAT"); v != "" {
		s.Format = v
	}
	if v := os.Getenv("LABOURRATE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("LABOURRATE_DEBUG: %w", err)
		}
		s.Debug = debug
	}
	if v := os.Getenv("LABOURRATE_STUDENT"); v != "" {
		s.Student = v
	}
	return s, nil
}
