// Package maze implements the room graph, the chambers and the controller
// that moves the player between them.
package maze

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/tatianab/maze-game/internal/gridmap"
	"github.com/tatianab/maze-game/internal/models"
)

// Map directories for each chamber.
const (
	ArmoryMapDir  = "armory"
	LibraryMapDir = "library"
	ThroneMapDir  = "throne"
)

// Options configures a new Maze.
type Options struct {
	Content *models.Content
	// Maps holds one directory per chamber. Nil or missing directories leave
	// the chamber without a map.
	Maps   fs.FS
	Dice   Dice
	Logger *logrus.Entry
}

// Maze owns the player and the current room and dispatches commands to the
// current room's capabilities.
type Maze struct {
	player       *models.Player
	current      Room
	finished     bool
	lastEntrance string

	armory  *Armory
	library *Library
	throne  *ThroneRoom
	caps    map[Room]Capabilities

	rejections models.Rejections
	log        *logrus.Entry
}

// New builds the three chambers, links them west to east and places the
// player in the armory.
func New(opts Options) (*Maze, error) {
	if opts.Content == nil {
		return nil, errors.New("maze: content is required")
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	m := &Maze{
		player:     models.NewPlayer(),
		armory:     NewArmory(opts.Content),
		library:    NewLibrary(opts.Content),
		throne:     NewThroneRoom(opts.Content, opts.Dice),
		rejections: opts.Content.Rejections,
		log:        log.WithField("component", "maze"),
	}
	m.throne.SetLessonCounter(m.library)

	m.loadMap(m.armory, opts.Maps, ArmoryMapDir)
	m.loadMap(m.library, opts.Maps, LibraryMapDir)
	m.loadMap(m.throne, opts.Maps, ThroneMapDir)

	m.armory.Link(East, m.library)
	m.library.Link(West, m.armory)
	m.library.Link(East, m.throne)
	m.throne.Link(West, m.library)

	m.caps = make(map[Room]Capabilities, 3)
	for _, r := range m.Rooms() {
		m.caps[r] = r.Capabilities()
	}

	m.current = m.armory
	m.current.MarkEntered()
	return m, nil
}

func (m *Maze) loadMap(r Room, maps fs.FS, dir string) {
	if maps == nil {
		m.log.WithField("room", r.Name()).Warn("No map source configured")
		return
	}
	g, err := gridmap.Load(maps, dir)
	if err != nil {
		m.log.WithError(err).WithField("room", r.Name()).Warn("Map not loaded")
		return
	}
	r.base().SetGrid(g)
}

// Rooms returns the chambers from west to east.
func (m *Maze) Rooms() []Room {
	return []Room{m.armory, m.library, m.throne}
}

// Armory returns the starting chamber.
func (m *Maze) Armory() *Armory {
	return m.armory
}

// Library returns the middle chamber.
func (m *Maze) Library() *Library {
	return m.library
}

// ThroneRoom returns the final chamber.
func (m *Maze) ThroneRoom() *ThroneRoom {
	return m.throne
}

// CurrentRoom returns the room the player is in. It is never nil.
func (m *Maze) CurrentRoom() Room {
	return m.current
}

// Player returns the player owned by the maze.
func (m *Maze) Player() *models.Player {
	return m.player
}

// IsFinished reports whether the final encounter has been fought.
func (m *Maze) IsFinished() bool {
	return m.finished
}

// Outcome returns the result of the final encounter, if fought.
func (m *Maze) Outcome() EncounterResult {
	return m.throne.Result()
}

// Score returns the player's score.
func (m *Maze) Score() int {
	return m.player.Score()
}

// Inventory returns the names of the items carried.
func (m *Maze) Inventory() []string {
	return m.player.Inventory()
}

// InventoryText describes the inventory as a sentence.
func (m *Maze) InventoryText() string {
	return m.player.InventoryText()
}

// Chance returns the player's current chance of winning the encounter.
func (m *Maze) Chance() int {
	return m.throne.Chance(m.player)
}

// StartingNarrative returns the first-visit narrative of the starting room.
func (m *Maze) StartingNarrative() string {
	return m.armory.SensoryDescription()
}

// LastEntranceNarrative returns the first-visit narrative captured by the
// latest move, or "" when that room had been visited before.
func (m *Maze) LastEntranceNarrative() string {
	return m.lastEntrance
}

// Move goes to the adjoining room in direction d.
func (m *Maze) Move(d Direction) bool {
	if m.finished || !m.current.IsValidDirection(d) {
		return false
	}
	from := m.current
	m.current = from.Adjoining(d)
	m.current.base().placeAt(d.Opposite())

	if m.current.IsFirstEntry() {
		m.lastEntrance = m.current.SensoryDescription()
		m.current.MarkEntered()
	} else {
		m.lastEntrance = ""
	}

	m.log.WithFields(logrus.Fields{
		"from":      from.Name(),
		"to":        m.current.Name(),
		"direction": d.String(),
		"first":     m.lastEntrance != "",
	}).Debug("Moved")
	return true
}

// Walk steps the tracked position one cell inside the current room's map.
func (m *Maze) Walk(d Direction) bool {
	if m.finished || !d.Planar() {
		return false
	}
	r := m.current.base()
	if r.grid == nil || !r.pos.Valid() {
		return false
	}
	dr, dc := d.Delta()
	row, col := r.pos.Row+dr, r.pos.Col+dc
	if r.grid.Blocked(row, col) {
		return false
	}
	r.pos = gridmap.Position{Row: row, Col: col}
	return true
}

// UseDoor walks through a door next to the player. The direction is taken
// from the wall the door sits on.
func (m *Maze) UseDoor() (string, bool) {
	if m.finished {
		return m.rejections.Finished, false
	}
	d, ok := m.adjacentDoor()
	if !ok {
		return m.rejections.NoDoor, false
	}
	if !m.Move(d) {
		return m.rejections.Locked, false
	}
	return fmt.Sprintf("You walk through the door into the %s.", m.current.Name()), true
}

func (m *Maze) adjacentDoor() (Direction, bool) {
	r := m.current.base()
	if r.grid == nil || !r.pos.Valid() {
		return 0, false
	}
	g := r.grid
	for _, d := range []Direction{North, South, West, East} {
		dr, dc := d.Delta()
		row, col := r.pos.Row+dr, r.pos.Col+dc
		if g.CellAt(gridmap.Layout, row, col) != gridmap.DoorGlyph {
			continue
		}
		switch {
		case col == 0:
			return West, true
		case col == g.Cols()-1:
			return East, true
		case row == 0:
			return North, true
		case row == g.Rows()-1:
			return South, true
		default:
			return d, true
		}
	}
	return 0, false
}

// Loot loots the current room, or explains that nothing can be taken.
func (m *Maze) Loot() string {
	if m.finished {
		return m.rejections.Finished
	}
	if c := m.caps[m.current].Loot; c != nil {
		return c.Loot(m.player)
	}
	return m.rejections.Loot
}

// Interact interacts with the current room.
func (m *Maze) Interact() string {
	if m.finished {
		return m.rejections.Finished
	}
	if c := m.caps[m.current].Interact; c != nil {
		return c.Interact(m.player)
	}
	return m.rejections.Interact
}

// Exit leaves through the current room. In an exitable room this ends the
// game whatever the outcome.
func (m *Maze) Exit() string {
	if m.finished {
		return m.rejections.Finished
	}
	c := m.caps[m.current].Exit
	if c == nil {
		return m.rejections.Exit
	}
	chance := m.Chance()
	result := c.Exit(m.player)
	m.finished = true

	m.log.WithFields(logrus.Fields{
		"chance":  chance,
		"roll":    m.throne.LastRoll(),
		"outcome": m.throne.Result().String(),
		"score":   m.player.Score(),
	}).Info("Encounter resolved")
	return result
}
