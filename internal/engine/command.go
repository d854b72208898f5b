package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/maze-game/internal/maze"
)

// ErrUnknownCommand is returned by ParseCommand for input it cannot map to
// a verb.
var ErrUnknownCommand = errors.New("unknown command")

// Verb is the action a command asks for.
type Verb int

const (
	VerbMove Verb = iota
	VerbWalk
	VerbLoot
	VerbInteract
	VerbExit
	VerbInventory
	VerbScore
	VerbLook
	VerbDoor
	VerbHelp
)

// Command is a parsed player command.
type Command struct {
	Verb      Verb
	Direction maze.Direction // VerbMove and VerbWalk only
}

var verbs = map[string]Verb{
	"loot":      VerbLoot,
	"l":         VerbLoot,
	"take":      VerbLoot,
	"interact":  VerbInteract,
	"i":         VerbInteract,
	"talk":      VerbInteract,
	"exit":      VerbExit,
	"x":         VerbExit,
	"fight":     VerbExit,
	"inventory": VerbInventory,
	"inv":       VerbInventory,
	"v":         VerbInventory,
	"score":     VerbScore,
	"look":      VerbLook,
	"door":      VerbDoor,
	"open":      VerbDoor,
	"help":      VerbHelp,
	"h":         VerbHelp,
	"?":         VerbHelp,
}

// HelpText lists the commands understood by ParseCommand.
const HelpText = `Commands:
  Movement: north, south, east, west, up, down (or n, s, e, w, u, d), go <dir>
  Walking:  walk <dir> steps inside the room, door walks through an adjacent door
  Actions:  interact (i), loot (l), fight (x), inventory (v), score, look
  Quit:     quit (q)`

// ParseCommand maps player input to a Command. Input is case-insensitive;
// words after a single-word verb are ignored, so "talk to the sage" works.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	head, rest := fields[0], fields[1:]

	if d, ok := maze.ParseDirection(head); ok && len(rest) == 0 {
		return Command{Verb: VerbMove, Direction: d}, nil
	}

	switch head {
	case "go", "move", "walk":
		if len(rest) != 1 {
			return Command{}, fmt.Errorf("%w: %s needs one direction", ErrUnknownCommand, head)
		}
		d, ok := maze.ParseDirection(rest[0])
		if !ok {
			return Command{}, fmt.Errorf("%w: bad direction %q", ErrUnknownCommand, rest[0])
		}
		verb := VerbMove
		if head == "walk" {
			verb = VerbWalk
		}
		return Command{Verb: verb, Direction: d}, nil
	}

	if v, ok := verbs[head]; ok {
		return Command{Verb: v}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, head)
}
