package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/maze-game/assets"
	"github.com/tatianab/maze-game/internal/engine"
	"github.com/tatianab/maze-game/internal/models"
)

type fixedRoll int

func (f fixedRoll) IntN(int) int {
	return int(f)
}

func newTestEngine(t *testing.T, roll int) *engine.Engine {
	t.Helper()
	content, err := models.ParseContent(assets.Content)
	require.NoError(t, err)
	eng, err := engine.New(engine.Options{
		Content: content,
		Maps:    assets.Maps(),
		Dice:    fixedRoll(roll),
	})
	require.NoError(t, err)
	return eng
}

func TestRunToVictory(t *testing.T) {
	eng := newTestEngine(t, 0)
	in := strings.NewReader("loot\neast\ntalk\neast\nfight\nloot\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), eng, in, &out))

	text := out.String()
	assert.Contains(t, text, "WELCOME TO THE MAZE GAME")
	assert.Contains(t, text, "YOU AWAKEN IN THE WEAPON CHAMBER")
	assert.Contains(t, text, "Current Room: Sage's Chamber")
	assert.Contains(t, text, "VICTORY")
	assert.Contains(t, text, "Final Score: 575")
	assert.Equal(t, models.StatusWon, eng.Status())
}

func TestRunRejectsAndQuits(t *testing.T) {
	eng := newTestEngine(t, 0)
	in := strings.NewReader("\ndance\nwest\nQ\nloot\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), eng, in, &out))

	text := out.String()
	assert.Contains(t, text, "Please enter a valid command.")
	assert.Contains(t, text, "Unknown command.")
	assert.Contains(t, text, "You cannot go that way.")
	assert.Contains(t, text, "You have abandoned the maze.")
	assert.NotContains(t, text, "Final Score")
	assert.Equal(t, 0, eng.State().Score, "input after quit is not read")
}

func TestRunEndOfInput(t *testing.T) {
	eng := newTestEngine(t, 0)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), eng, strings.NewReader("score\n"), &out))
	assert.Contains(t, out.String(), "Score: 0")
	assert.Equal(t, models.StatusPlaying, eng.Status())
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "abcdef", center("abcdef", 3))
}
