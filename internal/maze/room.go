package maze

import (
	"strings"

	"github.com/tatianab/maze-game/internal/gridmap"
	"github.com/tatianab/maze-game/internal/models"
)

const rule = "═══════════════════════════════════════"

// Room is a node of the maze. Every chamber embeds BaseRoom for navigation
// and adds its own description and capabilities.
type Room interface {
	Name() string
	Adjoining(d Direction) Room
	IsValidDirection(d Direction) bool
	Directions() []Direction
	Exits() string
	MarkEntered()
	IsFirstEntry() bool
	Position() gridmap.Position
	Snapshot() *gridmap.Snapshot

	Describe() string
	SensoryDescription() string
	Capabilities() Capabilities

	base() *BaseRoom
}

// BaseRoom holds the state shared by all chambers.
type BaseRoom struct {
	name    string
	links   [numDirections]Room
	grid    *gridmap.GridMap
	pos     gridmap.Position
	entered bool

	exits       models.ExitsText
	placeholder string
}

func newBaseRoom(name string, content *models.Content) BaseRoom {
	return BaseRoom{
		name:        name,
		pos:         gridmap.NoPosition,
		exits:       content.Exits,
		placeholder: content.Placeholder,
	}
}

func (r *BaseRoom) base() *BaseRoom {
	return r
}

// Name returns the room's display name.
func (r *BaseRoom) Name() string {
	return r.name
}

// Link sets the room reached by going d. Links are one-way.
func (r *BaseRoom) Link(d Direction, to Room) {
	if d.IsValid() {
		r.links[d] = to
	}
}

// Adjoining returns the room in direction d, or nil.
func (r *BaseRoom) Adjoining(d Direction) Room {
	if !d.IsValid() {
		return nil
	}
	return r.links[d]
}

// IsValidDirection reports whether a room is linked in direction d.
func (r *BaseRoom) IsValidDirection(d Direction) bool {
	return r.Adjoining(d) != nil
}

// Directions lists the linked directions in N, S, E, W, U, D order.
func (r *BaseRoom) Directions() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if r.links[d] != nil {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Exits describes the available directions, or that there are none.
func (r *BaseRoom) Exits() string {
	dirs := r.Directions()
	if len(dirs) == 0 {
		return r.exits.Trapped
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return r.exits.Prefix + " " + strings.Join(names, ", ") + "."
}

// MarkEntered records that the player has been in the room.
func (r *BaseRoom) MarkEntered() {
	r.entered = true
}

// IsFirstEntry reports whether the room has not been entered yet.
func (r *BaseRoom) IsFirstEntry() bool {
	return !r.entered
}

// SetGrid attaches a loaded map and places the player on its spawn marker.
func (r *BaseRoom) SetGrid(g *gridmap.GridMap) {
	r.grid = g
	r.pos = gridmap.NoPosition
	if g == nil {
		return
	}
	if row, col, ok := g.Find(gridmap.Objects, gridmap.SpawnGlyph); ok {
		r.pos = gridmap.Position{Row: row, Col: col}
	}
}

// Position returns the tracked player position, or NoPosition.
func (r *BaseRoom) Position() gridmap.Position {
	return r.pos
}

// Snapshot returns a copy of the composed map, or nil without one.
func (r *BaseRoom) Snapshot() *gridmap.Snapshot {
	if r.grid == nil {
		return nil
	}
	return r.grid.Snapshot(r.pos)
}

func (r *BaseRoom) renderGrid() string {
	if r.grid == nil {
		return r.placeholder
	}
	return r.grid.Render(r.pos)
}

// describe frames a chamber's text around the rendered map.
func (r *BaseRoom) describe(text models.RoomText, extra string) string {
	var sb strings.Builder
	sb.WriteString(rule + "\n")
	sb.WriteString("      " + text.Title + "\n")
	sb.WriteString(rule + "\n\n")
	sb.WriteString(text.Description + "\n\n")
	if extra != "" {
		sb.WriteString(extra + "\n\n")
	}
	sb.WriteString("Room Layout:\n")
	sb.WriteString(r.renderGrid() + "\n")
	sb.WriteString(rule)
	if text.Legend != "" {
		sb.WriteString("\n" + text.Legend)
	}
	return sb.String()
}

// placeAt moves the tracked position to the entry door on wall, falling back
// to the spawn marker.
func (r *BaseRoom) placeAt(wall Direction) {
	if r.grid == nil {
		return
	}
	if pos, ok := doorInside(r.grid, wall); ok {
		r.pos = pos
		return
	}
	if row, col, ok := r.grid.Find(gridmap.Objects, gridmap.SpawnGlyph); ok {
		r.pos = gridmap.Position{Row: row, Col: col}
	}
}

// doorInside finds a door on the given wall and returns the cell just inside
// it.
func doorInside(g *gridmap.GridMap, wall Direction) (gridmap.Position, bool) {
	rows, cols := g.Rows(), g.Cols()
	switch wall {
	case West, East:
		col, inner := 0, 1
		if wall == East {
			col, inner = cols-1, cols-2
		}
		for row := range rows {
			if g.CellAt(gridmap.Layout, row, col) == gridmap.DoorGlyph {
				return gridmap.Position{Row: row, Col: inner}, true
			}
		}
	case North, South:
		row, inner := 0, 1
		if wall == South {
			row, inner = rows-1, rows-2
		}
		for col := range cols {
			if g.CellAt(gridmap.Layout, row, col) == gridmap.DoorGlyph {
				return gridmap.Position{Row: inner, Col: col}, true
			}
		}
	}
	return gridmap.NoPosition, false
}
