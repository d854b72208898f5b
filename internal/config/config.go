package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// UI modes.
const (
	UIAuto    = "auto"
	UITUI     = "tui"
	UIConsole = "console"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultModel = "gemini-2.5-flash"

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables the narrator when set.
	GeminiAPIKey string
	GeminiModel  string

	MapDir      string // empty means the embedded maps
	ContentFile string // empty means the embedded content
	UI          string
	Seed        *int64 // nil means an unseeded game

	LocaleDir string
	Language  string

	LogLevel  logrus.Level
	LogFormat string
	LogFile   string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", defaultModel),
		MapDir:       os.Getenv("MAZE_MAP_DIR"),
		ContentFile:  os.Getenv("MAZE_CONTENT_FILE"),
		UI:           strings.ToLower(envOr("MAZE_UI", UIAuto)),
		LocaleDir:    os.Getenv("MAZE_LOCALE_DIR"),
		Language:     envOr("MAZE_LANG", "en_US"),
		LogFormat:    strings.ToLower(envOr("LOG_FORMAT", FormatText)),
		LogFile:      os.Getenv("LOG_FILE"),
	}

	switch cfg.UI {
	case UIAuto, UITUI, UIConsole:
	default:
		return nil, fmt.Errorf("MAZE_UI must be one of auto, tui or console, got %q", cfg.UI)
	}

	if s := os.Getenv("MAZE_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MAZE_SEED is not an integer: %w", err)
		}
		cfg.Seed = &seed
	}

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.LogFormat != FormatText && cfg.LogFormat != FormatJSON {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
