package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App    App    `mapstructure:"app"`
	Logger Logger `mapstructure:"logger"`
	API    API    `mapstructure:"api"`
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: fund-directory
logger:
  level: debug
api:
  port: 9090
`), 0o600))

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "fund-directory", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 9090, cfg.API.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  port: 9090\n"), 0o600))
	t.Setenv("API_PORT", "7070")

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, 7070, cfg.API.Port)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg := testConfig{Logger: Logger{Level: "info", Encoding: "json"}}
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Encoding)
}
