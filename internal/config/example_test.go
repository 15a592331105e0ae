package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExampleConfiguration(t *testing.T) {
	state := CreateExampleConfiguration()

	assert.Equal(t, 1000.0, state.Wage.WeeklyGross)
	assert.Equal(t, 8.0, state.Time.StandardHoursPerDay)
	require.Len(t, state.Overheads, 3)

	var total float64
	for _, section := range state.Overheads {
		total += section.Subtotal()
	}
	assert.Equal(t, 1800.0+1200+7800+850+4680+1020+400, total)

	require.NoError(t, NewInputParser().ValidateState(&state))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	state := CreateExampleConfiguration()

	require.NoError(t, SaveConfiguration(state, path))

	loaded, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, state, *loaded)
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	err := SaveConfiguration(CreateExampleConfiguration(), filepath.Join(t.TempDir(), "missing", "x.yaml"))
	assert.Error(t, err)
}
