package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/maze-game/assets"
	"github.com/tatianab/maze-game/internal/config"
	"github.com/tatianab/maze-game/internal/maze"
	"github.com/tatianab/maze-game/internal/models"
)

// rolls returns queued values, then the worst possible roll.
type rolls struct {
	queue []int
	calls int
}

func (r *rolls) IntN(n int) int {
	r.calls++
	if len(r.queue) == 0 {
		return n - 1
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return v
}

type fakeNarrator struct {
	rooms []string
	err   error
}

func (f *fakeNarrator) Embellish(_ context.Context, room, narrative string) (string, error) {
	f.rooms = append(f.rooms, room)
	if f.err != nil {
		return "", f.err
	}
	return "EMBELLISHED " + room, nil
}

func newTestEngine(t *testing.T, dice maze.Dice, narrator Narrator) *Engine {
	t.Helper()
	content, err := models.ParseContent(assets.Content)
	require.NoError(t, err)

	e, err := New(Options{
		Content:  content,
		Maps:     assets.Maps(),
		Dice:     dice,
		Narrator: narrator,
	})
	require.NoError(t, err)
	return e
}

func play(t *testing.T, e *Engine, actions ...string) (string, string) {
	t.Helper()
	var outcome, status string
	for _, a := range actions {
		var err error
		outcome, status, err = e.ProcessTurn(context.Background(), a)
		require.NoError(t, err, "action %q", a)
	}
	return outcome, status
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"north", Command{Verb: VerbMove, Direction: maze.North}},
		{"E", Command{Verb: VerbMove, Direction: maze.East}},
		{"d", Command{Verb: VerbMove, Direction: maze.Down}},
		{"go west", Command{Verb: VerbMove, Direction: maze.West}},
		{"  Move   up ", Command{Verb: VerbMove, Direction: maze.Up}},
		{"walk s", Command{Verb: VerbWalk, Direction: maze.South}},
		{"loot", Command{Verb: VerbLoot}},
		{"take sword", Command{Verb: VerbLoot}},
		{"talk to the sage", Command{Verb: VerbInteract}},
		{"i", Command{Verb: VerbInteract}},
		{"x", Command{Verb: VerbExit}},
		{"fight", Command{Verb: VerbExit}},
		{"inv", Command{Verb: VerbInventory}},
		{"v", Command{Verb: VerbInventory}},
		{"score", Command{Verb: VerbScore}},
		{"look", Command{Verb: VerbLook}},
		{"open", Command{Verb: VerbDoor}},
		{"?", Command{Verb: VerbHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "dance", "go", "go nowhere", "walk north east", "north please"} {
		_, err := ParseCommand(input)
		assert.ErrorIs(t, err, ErrUnknownCommand, "input %q", input)
	}
}

func TestStartNarrative(t *testing.T) {
	e := newTestEngine(t, &rolls{}, nil)

	out := e.Start(context.Background())
	assert.Contains(t, out, "WEAPON CHAMBER")

	state := e.State()
	assert.Equal(t, "Weapon Chamber", state.Room)
	assert.Equal(t, []string{"east"}, state.Directions)
	assert.Equal(t, []string{"loot", "interact"}, state.Actions)
	assert.Equal(t, models.StatusPlaying, state.Status)
	assert.False(t, state.Finished)
	require.NotNil(t, state.Map)
	assert.Equal(t, 7, state.Map.Rows)
	assert.NotEmpty(t, state.GameID)
}

func TestVictoryRun(t *testing.T) {
	dice := &rolls{queue: []int{94}}
	e := newTestEngine(t, dice, nil)

	_, status := play(t, e, "loot", "east", "interact", "interact", "interact", "east")
	assert.Equal(t, models.StatusPlaying, status)
	assert.Equal(t, 95, e.Chance())

	outcome, status := play(t, e, "fight")
	assert.Equal(t, models.StatusWon, status)
	assert.Contains(t, outcome, "VICTORY")
	assert.Contains(t, outcome, "625")
	assert.Equal(t, 1, dice.calls)

	state := e.State()
	assert.True(t, state.Finished)
	assert.Equal(t, 625, state.Score)
	assert.Equal(t, []string{"Iron Longsword"}, state.Inventory)
}

func TestUnarmedDefeat(t *testing.T) {
	e := newTestEngine(t, &rolls{queue: []int{0}}, nil)

	outcome, status := play(t, e, "e", "e", "x")
	assert.Equal(t, models.StatusLost, status)
	assert.Contains(t, outcome, "DEFEAT")
	assert.Equal(t, 0, e.State().Score)
}

func TestFinishedGameRejectsEverything(t *testing.T) {
	dice := &rolls{queue: []int{0}}
	e := newTestEngine(t, dice, nil)
	play(t, e, "loot", "east", "east", "fight")

	finished := e.text.Rejections.Finished
	for _, a := range []string{"loot", "interact", "fight", "west", "walk north", "door"} {
		outcome, status := play(t, e, a)
		assert.Equal(t, finished, outcome, "action %q", a)
		assert.Equal(t, models.StatusWon, status)
	}
	assert.Equal(t, 1, dice.calls)
	assert.Equal(t, "Boss Chamber", e.State().Room)
}

func TestRejections(t *testing.T) {
	e := newTestEngine(t, &rolls{}, nil)
	rej := e.text.Rejections

	outcome, status := play(t, e, "dance")
	assert.Equal(t, rej.Unknown, outcome)
	assert.Equal(t, models.StatusPlaying, status)

	outcome, _ = play(t, e, "west")
	assert.Equal(t, rej.Blocked, outcome)

	outcome, _ = play(t, e, "fight")
	assert.Equal(t, rej.Exit, outcome)

	outcome, _ = play(t, e, "door")
	assert.Equal(t, rej.NoDoor, outcome)

	assert.Equal(t, "Weapon Chamber", e.State().Room)
}

func TestWalkAndDoor(t *testing.T) {
	e := newTestEngine(t, &rolls{}, nil)

	outcome, _ := play(t, e, "walk north")
	assert.Equal(t, "✓ You move north.", outcome)
	outcome, _ = play(t, e, "walk up")
	assert.Equal(t, e.text.Rejections.Blocked, outcome)

	play(t, e, "walk south")
	for range 7 {
		play(t, e, "walk east")
	}
	outcome, _ = play(t, e, "walk east")
	assert.Equal(t, e.text.Rejections.Blocked, outcome, "door cells block walking")

	outcome, _ = play(t, e, "door")
	assert.True(t, strings.HasPrefix(outcome, "You walk through the door into the Sage's Chamber."))

	state := e.State()
	assert.Equal(t, "Sage's Chamber", state.Room)
	assert.Equal(t, 3, state.Map.Player.Row)
	assert.Equal(t, 1, state.Map.Player.Col)
}

func TestNarratorEmbellishesFirstVisits(t *testing.T) {
	n := &fakeNarrator{}
	e := newTestEngine(t, &rolls{}, n)

	assert.Equal(t, "EMBELLISHED Weapon Chamber", e.Start(context.Background()))

	outcome, _ := play(t, e, "east")
	assert.Contains(t, outcome, "EMBELLISHED Sage's Chamber")

	outcome, _ = play(t, e, "west", "east")
	assert.NotContains(t, outcome, "EMBELLISHED")
	assert.Equal(t, []string{"Weapon Chamber", "Sage's Chamber"}, n.rooms)
}

func TestNarratorFailureFallsBack(t *testing.T) {
	n := &fakeNarrator{err: errors.New("quota exceeded")}
	e := newTestEngine(t, &rolls{}, n)

	out := e.Start(context.Background())
	assert.Contains(t, out, "WEAPON CHAMBER")
	assert.NoError(t, e.Close())
}

func TestHistory(t *testing.T) {
	e := newTestEngine(t, &rolls{}, nil)
	play(t, e, "loot", "score", "inventory")

	h := e.History()
	require.Len(t, h.Entries, 3)
	assert.Equal(t, 3, h.Turns())
	assert.Equal(t, "loot", h.Entries[0].PlayerAction)
	assert.Equal(t, 50, h.Entries[0].Score)
	assert.Equal(t, "Score: 50", h.Entries[1].Outcome)
	assert.Equal(t, []string{"Iron Longsword"}, h.Entries[2].Inventory)

	h.Entries[0].PlayerAction = "changed"
	assert.Equal(t, "loot", e.History().Entries[0].PlayerAction)
}

func TestProcessTurnCanceled(t *testing.T) {
	e := newTestEngine(t, &rolls{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := e.ProcessTurn(ctx, "loot")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, e.History().Turns())
}

func TestNewEngineFromConfig(t *testing.T) {
	seed := int64(7)
	cfg := &config.Config{Seed: &seed}

	e, err := NewEngine(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, "Weapon Chamber", e.State().Room)

	_, err = NewEngine(context.Background(), &config.Config{ContentFile: "/nonexistent/content.yaml"}, nil)
	assert.Error(t, err)
}
