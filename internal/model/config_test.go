package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Generator.Count)
	assert.Equal(t, 10, cfg.Generator.MaxDaysAgo)
	assert.Zero(t, cfg.Generator.Seed)
	assert.False(t, cfg.Generator.PairedContent)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
generator:
  count: 12
  seed: 7
  paired_content: true
display:
  locale: es
log:
  level: debug
  file: ""
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Generator.Count)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.True(t, cfg.Generator.PairedContent)
	assert.Equal(t, 10, cfg.Generator.MaxDaysAgo)
	assert.Equal(t, "es", cfg.Display.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NOTIFICATIONS_GENERATOR_SEED", "42")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
generator:
  count: -1
display:
  locale: fr
`)

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Count")
	assert.Contains(t, err.Error(), "Locale")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "generator: [unterminated")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveConfig_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultAppConfig()
	cfg.Generator.Count = 3
	cfg.Generator.Seed = 1234
	cfg.Display.Locale = "es"
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAppConfig_Validate(t *testing.T) {
	cfg := DefaultAppConfig()
	require.NoError(t, cfg.Validate())

	cfg.Generator.MaxDaysAgo = 1000
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "MaxDaysAgo")
	assert.Contains(t, err.Error(), "Level")
}
