package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/framesight/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framesight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dev", cfg.Filter)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
filter: warn
sampleRates:
  warn: 0.25
  info: 0.05
rateLimit: 100
rateBurst: 20
disabledProviders:
  - process
output:
  format: yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Filter)
	assert.Equal(t, 0.25, cfg.SampleRates["warn"])
	assert.Equal(t, 100.0, cfg.RateLimit)
	assert.Equal(t, []string{"process"}, cfg.DisabledProviders)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidConfig, errors.CodeOf(err))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "filter: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidConfig, errors.CodeOf(err))
}

func TestValidateSampleRateBounds(t *testing.T) {
	path := writeConfig(t, `
sampleRates:
  warn: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FRAMESIGHT_FILTER", "error")
	t.Setenv("FRAMESIGHT_RATE_LIMIT", "50")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Filter)
	assert.Equal(t, 50.0, cfg.RateLimit)
}

func TestEmitterOptions(t *testing.T) {
	path := writeConfig(t, `
filter: warn
sampleRates:
  dev: 1
rateLimit: 10
rateBurst: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.EmitterOptions(), 3)
}
