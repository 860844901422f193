package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()

	assert.Equal(t, "5000", cfg.API.ListenPort)
	assert.Equal(t, 10, cfg.Github.RequestTimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Logs.OutputLogsAsJSON)
}

func TestRequestTimeout(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected time.Duration
	}{
		{name: "Default timeout", seconds: 10, expected: 10 * time.Second},
		{name: "Disabled timeout", seconds: 0, expected: 0},
		{name: "Negative value disables timeout", seconds: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GithubConfig{RequestTimeoutSeconds: tt.seconds}.RequestTimeout())
		})
	}
}

func TestLocate(t *testing.T) {
	binaryDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(binaryDir, "config"), 0o755))

	configFile := filepath.Join(binaryDir, "config", "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[LOGS]\nLevel = \"info\"\n"), 0o600))

	found, err := locate(binaryDir)
	assert.NoError(t, err)
	assert.Equal(t, configFile, found)
}

func TestLocateMissingFile(t *testing.T) {
	// the package directory has no nested config/config.toml
	_, err := locate(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

// TestLoad reads a config.toml from the working directory on top of the default values
func TestLoad(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "config"), 0o755))

	content := `[API]
ListenPort = "8080"

[GITHUB]
RequestTimeoutSeconds = 3

[LOGS]
Level = "warn"
`
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "config", "config.toml"), []byte(content), 0o600))

	previousDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() {
		_ = os.Chdir(previousDir)
	})

	cfg, err := Load()
	require.NoError(t, err)

	defaults := GetDefault()
	assert.Equal(t, "8080", cfg.API.ListenPort)
	assert.Equal(t, 3, cfg.Github.RequestTimeoutSeconds)
	assert.Equal(t, "warn", cfg.Logs.Level)

	// keys absent from the file keep their default value
	assert.Equal(t, defaults.API.RequestsBurst, cfg.API.RequestsBurst)
	assert.Equal(t, defaults.Logs.OutputLogsAsJSON, cfg.Logs.OutputLogsAsJSON)
}
