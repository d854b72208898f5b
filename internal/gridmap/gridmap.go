// Package gridmap holds the three-layer character grid that describes a
// room's layout, the objects placed in it and which cells block movement.
package gridmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Blank is the sentinel for empty cells and out-of-range lookups.
const Blank = ' '

// Glyphs with a fixed meaning across all maps.
const (
	PlayerGlyph = '@'
	SpawnGlyph  = 'p'
	DoorGlyph   = 'd'
	WallGlyph   = '1'
)

// ErrLoad wraps every failure to read or validate a map source.
var ErrLoad = errors.New("map load failed")

// Layer selects one of the three parallel grids.
type Layer int

const (
	Layout Layer = iota
	Objects
	Collision
)

// String returns the file stem used for the layer on disk.
func (l Layer) String() string {
	switch l {
	case Layout:
		return "layout"
	case Objects:
		return "objects"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Position is a row/column pair inside a grid. The zero value is a valid
// cell; use NoPosition for "unknown".
type Position struct {
	Row int
	Col int
}

// NoPosition marks an untracked position.
var NoPosition = Position{Row: -1, Col: -1}

// Valid reports whether the position has been set.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Col >= 0
}

// GridMap stores the layout, objects and collision layers of one room. All
// three layers have identical dimensions.
type GridMap struct {
	layers [3][][]rune
	rows   int
	cols   int

	blocking mapset.Set[rune]
}

func newGridMap(layout, objects, collision [][]rune) (*GridMap, error) {
	rows, cols := len(layout), 0
	if rows > 0 {
		cols = len(layout[0])
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: layout is empty", ErrLoad)
	}

	g := &GridMap{
		layers:   [3][][]rune{layout, objects, collision},
		rows:     rows,
		cols:     cols,
		blocking: mapset.New[rune](),
	}
	g.blocking.Put(WallGlyph)

	for l, grid := range g.layers {
		if len(grid) != rows {
			return nil, fmt.Errorf("%w: %s has %d rows, layout has %d", ErrLoad, Layer(l), len(grid), rows)
		}
		for r, row := range grid {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: %s row %d has %d cells, want %d", ErrLoad, Layer(l), r+1, len(row), cols)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows in every layer.
func (g *GridMap) Rows() int {
	return g.rows
}

// Cols returns the number of columns in every layer.
func (g *GridMap) Cols() int {
	return g.cols
}

// InBounds reports whether row/col addresses a cell.
func (g *GridMap) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the character at row/col of the given layer, or Blank when
// the coordinates fall outside the grid.
func (g *GridMap) CellAt(layer Layer, row, col int) rune {
	if layer < Layout || layer > Collision || !g.InBounds(row, col) {
		return Blank
	}
	return g.layers[layer][row][col]
}

// Find returns the first occurrence of target in row-major order.
func (g *GridMap) Find(layer Layer, target rune) (int, int, bool) {
	if layer < Layout || layer > Collision {
		return -1, -1, false
	}
	for r, row := range g.layers[layer] {
		for c, cell := range row {
			if cell == target {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Blocked reports whether the player may not stand on row/col.
func (g *GridMap) Blocked(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.blocking.Has(g.layers[Collision][row][col])
}

// ClearObject blanks a single cell of the objects layer. It is the only
// mutation a GridMap supports.
func (g *GridMap) ClearObject(row, col int) bool {
	if !g.InBounds(row, col) || g.layers[Objects][row][col] == Blank {
		return false
	}
	g.layers[Objects][row][col] = Blank
	return true
}

// Compose returns a fresh grid with every non-blank object drawn over the
// layout.
func (g *GridMap) Compose() [][]rune {
	out := make([][]rune, g.rows)
	for r := range g.rows {
		out[r] = make([]rune, g.cols)
		for c := range g.cols {
			if obj := g.layers[Objects][r][c]; obj != Blank {
				out[r][c] = obj
			} else {
				out[r][c] = g.layers[Layout][r][c]
			}
		}
	}
	return out
}

// Render draws the composed grid inside box-drawing borders. When pos is a
// cell of the grid it is drawn as PlayerGlyph and the spawn marker falls back
// to the layout underneath it.
func (g *GridMap) Render(pos Position) string {
	cells := g.Compose()
	tracked := g.InBounds(pos.Row, pos.Col)

	var sb strings.Builder
	sb.WriteString("┌")
	sb.WriteString(strings.Repeat("──┬", g.cols-1))
	sb.WriteString("──┐\n")

	for r, row := range cells {
		sb.WriteString("│")
		for c, cell := range row {
			switch {
			case tracked && r == pos.Row && c == pos.Col:
				cell = PlayerGlyph
			case tracked && cell == SpawnGlyph:
				cell = g.layers[Layout][r][c]
			}
			sb.WriteRune(' ')
			sb.WriteRune(cell)
			sb.WriteString("│")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("└")
	sb.WriteString(strings.Repeat("──┴", g.cols-1))
	sb.WriteString("──┘")
	return sb.String()
}

// Snapshot is an immutable copy of a grid for presentation layers.
type Snapshot struct {
	Rows      int
	Cols      int
	Cells     [][]rune
	Collision [][]rune
	Player    Position
}

// Snapshot copies the composed grid and the collision layer.
func (g *GridMap) Snapshot(pos Position) *Snapshot {
	collision := make([][]rune, g.rows)
	for r, row := range g.layers[Collision] {
		collision[r] = append([]rune(nil), row...)
	}
	if !g.InBounds(pos.Row, pos.Col) {
		pos = NoPosition
	}
	return &Snapshot{
		Rows:      g.rows,
		Cols:      g.cols,
		Cells:     g.Compose(),
		Collision: collision,
		Player:    pos,
	}
}

// At returns the composed cell at row/col, or Blank.
func (s *Snapshot) At(row, col int) rune {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return Blank
	}
	return s.Cells[row][col]
}
