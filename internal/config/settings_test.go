package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrInitializeSettingsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	created, settings := LoadOrInitializeSettings(path)
	assert.True(t, created)
	assert.Equal(t, ":8080", settings.ListenAddress)
	assert.Equal(t, "C", settings.DefaultUnit)
	assert.True(t, settings.SeedDemoData)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	settings := &Settings{
		ListenAddress: ":9090",
		DefaultUnit:   "kPa",
		SeedDemoData:  false,
	}
	require.NoError(t, settings.SaveTo(path))

	created, loaded := LoadOrInitializeSettings(path)
	assert.False(t, created)
	assert.Equal(t, settings, loaded)
}
