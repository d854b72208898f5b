// Package engine runs a game session on top of the maze: it parses player
// commands, reports the game status after each turn and keeps the turn
// history.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tatianab/maze-game/assets"
	"github.com/tatianab/maze-game/internal/config"
	"github.com/tatianab/maze-game/internal/logger"
	"github.com/tatianab/maze-game/internal/maze"
	"github.com/tatianab/maze-game/internal/models"
)

const historyLimit = 100

// Options configures a new Engine.
type Options struct {
	Content  *models.Content
	Maps     fs.FS
	Dice     maze.Dice
	Narrator Narrator // optional
	Logger   *logrus.Entry
}

// Engine is safe for concurrent use; turns are applied one at a time.
type Engine struct {
	mu       sync.Mutex
	maze     *maze.Maze
	text     *models.Content
	narrator Narrator
	history  models.GameHistory
	gameID   string
	log      *logrus.Entry
}

func New(opts Options) (*Engine, error) {
	if opts.Content == nil {
		return nil, errors.New("engine: content is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	gameID := uuid.New().String()
	log = log.WithField("game_id", gameID)

	m, err := maze.New(maze.Options{
		Content: opts.Content,
		Maps:    opts.Maps,
		Dice:    opts.Dice,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		maze:     m,
		text:     opts.Content,
		narrator: opts.Narrator,
		gameID:   gameID,
		log:      log.WithField("component", "engine"),
	}, nil
}

// NewEngine builds an engine from configuration: content and maps come from
// the configured paths or the embedded assets, and a narrator is attached
// when a Gemini API key is set.
func NewEngine(ctx context.Context, cfg *config.Config, log *logrus.Entry) (*Engine, error) {
	content, err := loadContent(cfg.ContentFile)
	if err != nil {
		return nil, err
	}

	maps := assets.Maps()
	if cfg.MapDir != "" {
		maps = os.DirFS(cfg.MapDir)
	}

	var dice maze.Dice
	if cfg.Seed != nil {
		seed := uint64(*cfg.Seed)
		dice = rand.New(rand.NewPCG(seed, seed))
	}

	opts := Options{Content: content, Maps: maps, Dice: dice, Logger: log}
	var narrator *GeminiNarrator
	if cfg.GeminiAPIKey != "" {
		narrator, err = NewGeminiNarrator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create narrator: %w", err)
		}
		opts.Narrator = narrator
	}

	e, err := New(opts)
	if err != nil {
		if narrator != nil {
			narrator.Close()
		}
		return nil, err
	}
	return e, nil
}

func loadContent(path string) (*models.Content, error) {
	if path == "" {
		c, err := models.ParseContent(assets.Content)
		if err != nil {
			return nil, fmt.Errorf("embedded content: %w", err)
		}
		return c, nil
	}
	return models.LoadContent(path)
}

// Close releases the narrator, if it holds resources.
func (e *Engine) Close() error {
	if c, ok := e.narrator.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Engine) GameID() string {
	return e.gameID
}

// Start returns the opening narrative of the starting room.
func (e *Engine) Start(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.log.Info("Game started")
	return e.narrate(ctx, e.maze.CurrentRoom().Name(), e.maze.StartingNarrative())
}

// ProcessTurn applies one player action and returns the narrative outcome
// and the game status. Unrecognised input is answered with a rejection
// narrative, not an error.
func (e *Engine) ProcessTurn(ctx context.Context, action string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	outcome := e.apply(ctx, action)
	status := e.status()
	e.history.Append(models.HistoryEntry{
		PlayerAction: action,
		Outcome:      outcome,
		Status:       status,
		Room:         e.maze.CurrentRoom().Name(),
		Score:        e.maze.Score(),
		Inventory:    e.maze.Inventory(),
	}, historyLimit)

	e.log.WithFields(logrus.Fields{
		"action": action,
		"room":   e.maze.CurrentRoom().Name(),
		"status": status,
		"turn":   e.history.Turns(),
	}).Debug("Turn processed")
	return outcome, status, nil
}

func (e *Engine) apply(ctx context.Context, action string) string {
	cmd, err := ParseCommand(action)
	if err != nil {
		e.log.WithError(err).Debug("Command rejected")
		return e.text.Rejections.Unknown
	}

	switch cmd.Verb {
	case VerbMove:
		if !e.maze.Move(cmd.Direction) {
			return e.refusal()
		}
		out := fmt.Sprintf("→ You move %s into the %s.", cmd.Direction, e.maze.CurrentRoom().Name())
		return e.withEntrance(ctx, out)
	case VerbWalk:
		if !e.maze.Walk(cmd.Direction) {
			return e.refusal()
		}
		return fmt.Sprintf("✓ You move %s.", cmd.Direction)
	case VerbDoor:
		out, ok := e.maze.UseDoor()
		if !ok {
			return out
		}
		return e.withEntrance(ctx, out)
	case VerbLoot:
		return e.maze.Loot()
	case VerbInteract:
		return e.maze.Interact()
	case VerbExit:
		return e.maze.Exit()
	case VerbInventory:
		return e.maze.InventoryText()
	case VerbScore:
		return fmt.Sprintf("Score: %d", e.maze.Score())
	case VerbLook:
		r := e.maze.CurrentRoom()
		return r.Describe() + "\n\n" + r.Exits()
	case VerbHelp:
		return HelpText
	}
	return e.text.Rejections.Unknown
}

func (e *Engine) refusal() string {
	if e.maze.IsFinished() {
		return e.text.Rejections.Finished
	}
	return e.text.Rejections.Blocked
}

func (e *Engine) withEntrance(ctx context.Context, out string) string {
	n := e.maze.LastEntranceNarrative()
	if n == "" {
		return out
	}
	return out + "\n\n" + e.narrate(ctx, e.maze.CurrentRoom().Name(), n)
}

func (e *Engine) narrate(ctx context.Context, room, narrative string) string {
	if e.narrator == nil {
		return narrative
	}
	out, err := e.narrator.Embellish(ctx, room, narrative)
	if err != nil {
		e.log.WithError(err).WithField("room", room).Warn("Narrator failed, using plain narrative")
		return narrative
	}
	return out
}

func (e *Engine) status() string {
	if !e.maze.IsFinished() {
		return models.StatusPlaying
	}
	if e.maze.Outcome() == maze.EncounterVictory {
		return models.StatusWon
	}
	return models.StatusLost
}

// Status returns PLAYING, WON or LOST.
func (e *Engine) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status()
}

// State returns a snapshot of the game for presentation.
func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.maze.CurrentRoom()
	dirs := r.Directions()
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.String())
	}

	return models.GameState{
		GameID:      e.gameID,
		Room:        r.Name(),
		Description: r.Describe(),
		Exits:       r.Exits(),
		Directions:  names,
		Actions:     r.Capabilities().Names(),
		Score:       e.maze.Score(),
		Inventory:   e.maze.Inventory(),
		Status:      e.status(),
		Finished:    e.maze.IsFinished(),
		Map:         r.Snapshot(),
	}
}

// History returns a copy of the recorded turns.
func (e *Engine) History() models.GameHistory {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.history
	h.Entries = append([]models.HistoryEntry(nil), e.history.Entries...)
	return h
}

// Chance returns the current chance of winning the final encounter.
func (e *Engine) Chance() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maze.Chance()
}
