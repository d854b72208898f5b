// Package console runs the game as a line-oriented prompt loop.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/wordwrap"
	"github.com/zyedidia/generic/mapset"

	"github.com/tatianab/maze-game/internal/engine"
	"github.com/tatianab/maze-game/internal/models"
)

const (
	wrapWidth = 78
	domain    = "default"
)

var (
	colorTitle   = color.Style{color.FgYellow, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
	colorPrompt  = color.Style{color.FgMagenta, color.OpBold}
	colorDenied  = color.Style{color.FgRed, color.OpBold}
	colorVictory = color.Style{color.FgGreen, color.OpBold}
	colorDefeat  = color.Style{color.FgRed, color.OpBold}

	quitCommands = func() mapset.Set[string] {
		s := mapset.New[string]()
		for _, c := range []string{"q", "quit", "/quit"} {
			s.Put(c)
		}
		return s
	}()
)

// Configure loads translations for the console strings from dir. English
// message IDs are used as-is when dir is empty or has no catalog for lang.
func Configure(dir, lang string) {
	if dir == "" {
		return
	}
	gotext.Configure(dir, lang, domain)
}

// Run plays one game reading commands from in until the game ends, the input
// is exhausted or the player quits.
func Run(ctx context.Context, eng *engine.Engine, in io.Reader, out io.Writer) error {
	w := &writer{out: out}

	w.println(colorTitle.Sprint(banner()))
	w.println(colorSubtle.Sprint(engine.HelpText))
	w.println(wordwrap.String(eng.Start(ctx), wrapWidth))

	scanner := bufio.NewScanner(in)
	for {
		state := eng.State()
		if state.Finished {
			break
		}
		w.println("")
		w.println(state.Description)
		w.println("")
		w.println(gotext.Get("Current Room: %s", state.Room))
		w.println(state.Exits)
		if len(state.Actions) > 0 {
			w.println(gotext.Get("Actions: %s", strings.Join(state.Actions, ", ")))
		}
		w.println(gotext.Get("Score: %d", state.Score))
		w.print("\n" + colorPrompt.Sprint(gotext.Get("Enter command: ")))

		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			w.println(colorDenied.Sprint(gotext.Get("✗ Please enter a valid command.")))
			continue
		}
		if quitCommands.Has(strings.ToLower(input)) {
			w.println("\n" + colorDenied.Sprint(gotext.Get("✗ You have abandoned the maze. Thanks for playing!")))
			return w.err
		}

		outcome, status, err := eng.ProcessTurn(ctx, input)
		if err != nil {
			return err
		}
		w.println(styleOutcome(status, outcome))
		if w.err != nil {
			return w.err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	state := eng.State()
	if state.Finished {
		rule := strings.Repeat("═", 40)
		w.println("\n" + rule)
		w.println(gotext.Get("Final Score: %d", state.Score))
		w.println(rule)
	}
	return w.err
}

func banner() string {
	return strings.Join([]string{
		"╔════════════════════════════════════════╗",
		"║" + center(gotext.Get("WELCOME TO THE MAZE GAME"), 40) + "║",
		"║" + center(gotext.Get("A Dark Fantasy Dungeon Crawler"), 40) + "║",
		"╚════════════════════════════════════════╝",
	}, "\n")
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func styleOutcome(status, outcome string) string {
	text := wordwrap.String(outcome, wrapWidth)
	switch status {
	case models.StatusWon:
		return colorVictory.Sprint(text)
	case models.StatusLost:
		return colorDefeat.Sprint(text)
	}
	if strings.HasPrefix(outcome, "✗") {
		return colorDenied.Sprint(text)
	}
	return text
}

// writer remembers the first write error so the loop can check once.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) print(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *writer) println(s string) {
	w.print(s + "\n")
}
