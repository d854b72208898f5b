// Package app wires configuration, logging and the engine to a front end.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tatianab/maze-game/internal/config"
	"github.com/tatianab/maze-game/internal/console"
	"github.com/tatianab/maze-game/internal/engine"
	"github.com/tatianab/maze-game/internal/logger"
	"github.com/tatianab/maze-game/internal/tui"
)

// Run loads the configuration from the environment and plays one game.
func Run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui := chooseUI(cfg.UI, term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())))

	var fallback io.Writer = os.Stderr
	if ui == config.UITUI {
		fallback = io.Discard
	}
	log, closer, err := logger.Setup(cfg, fallback)
	if err != nil {
		return err
	}
	defer closer.Close()

	eng, err := engine.NewEngine(ctx, cfg, log.WithField("ui", ui))
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer eng.Close()

	if ui == config.UITUI {
		return tui.Run(ctx, eng)
	}
	console.Configure(cfg.LocaleDir, cfg.Language)
	return console.Run(ctx, eng, os.Stdin, os.Stdout)
}

// chooseUI resolves "auto" to the TUI on a terminal and the console
// otherwise.
func chooseUI(mode string, terminal bool) string {
	if mode != config.UIAuto {
		return mode
	}
	if terminal {
		return config.UITUI
	}
	return config.UIConsole
}
