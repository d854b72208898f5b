package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"GEMINI_API_KEY", "GEMINI_MODEL", "MAZE_MAP_DIR", "MAZE_CONTENT_FILE",
	"MAZE_UI", "MAZE_SEED", "MAZE_LOCALE_DIR", "MAZE_LANG",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, UIAuto, cfg.UI)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "en_US", cfg.Language)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.LogFormat)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("MAZE_UI", "Console")
	t.Setenv("MAZE_SEED", "-42")
	t.Setenv("MAZE_MAP_DIR", "/tmp/maps")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_FILE", "/tmp/maze.log")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.GeminiAPIKey)
	assert.Equal(t, UIConsole, cfg.UI)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(-42), *cfg.Seed)
	assert.Equal(t, "/tmp/maps", cfg.MapDir)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "/tmp/maze.log", cfg.LogFile)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAZE_UI", "web"},
		{"MAZE_SEED", "twelve"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
