// Package logger configures the application's logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tatianab/maze-game/internal/config"
)

// Setup builds a logger from cfg. Without a log file, output goes to
// fallback; the TUI passes io.Discard so log lines do not tear the screen.
// The returned closer releases the log file, if any.
func Setup(cfg *config.Config, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)

	if cfg.LogFormat == config.FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.LogFile == "" {
		log.SetOutput(fallback)
		return log, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

// Discard returns an entry that drops everything. Used by tests and tools.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
