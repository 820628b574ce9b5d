package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "ABCDEFG", cfg.Cleaning.ZoneAlphabet)
	assert.Equal(t, 1900, cfg.Bounds.MinYear)
	assert.Equal(t, 2100, cfg.Bounds.MaxYear)
	assert.Equal(t, 0.5, cfg.Map.BandPct)
	assert.Equal(t, 10, cfg.Detector.SampleSize)
	assert.NotEmpty(t, cfg.Lookup.Path)
	assert.Contains(t, cfg.Species, "Lobster American")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  format: console
map:
  band_pct: 1.5
cleaning:
  zone_alphabet: ABCD
lookup:
  path: /tmp/lookup.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 1.5, cfg.Map.BandPct)
	assert.Equal(t, "ABCD", cfg.Cleaning.ZoneAlphabet)
	assert.Equal(t, "/tmp/lookup.csv", cfg.Lookup.Path)
	// Untouched sections keep defaults.
	assert.Equal(t, 1900, cfg.Bounds.MinYear)
}

func TestLoad_EnvWinsOverYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  band_pct: 1.5\n"), 0o644))

	t.Setenv("LANDINGS_MAP_BAND_PCT", "2.25")
	t.Setenv("LANDINGS_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.25, cfg.Map.BandPct)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
