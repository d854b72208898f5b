package maze

import "strings"

// Direction names one of the six links a room may have.
type Direction int

// Directions in the order exits are listed.
const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

const numDirections = 6

// AllDirections returns every direction in listing order.
func AllDirections() []Direction {
	return []Direction{North, South, East, West, Up, Down}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// IsValid returns true for the six defined directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= Down
}

// Opposite returns the direction leading back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the grid offsets for a step in this direction. Up and Down
// have no planar offset.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Planar reports whether the direction moves within a grid.
func (d Direction) Planar() bool {
	return d >= North && d <= West
}

// ParseDirection accepts a full direction name or its first letter.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return -1, false
	}
}
