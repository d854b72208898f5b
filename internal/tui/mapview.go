package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/maze-game/internal/gridmap"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F5F"))
	floorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	doorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF875F")).Bold(true)
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD7FF")).Bold(true)
	objectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")).Bold(true)
)

// mapGlyph returns the glyph drawn for a composed cell and its style.
func mapGlyph(cell rune) (string, lipgloss.Style) {
	switch cell {
	case 'w':
		return "#", wallStyle
	case 'f', gridmap.Blank:
		return ".", floorStyle
	case gridmap.DoorGlyph:
		return "+", doorStyle
	default:
		return string(cell), objectStyle
	}
}

func renderMap(snap *gridmap.Snapshot) string {
	if snap == nil {
		return helpStyle.Render("[Map not loaded]")
	}

	var sb strings.Builder
	for r := range snap.Rows {
		for c := range snap.Cols {
			cell := snap.At(r, c)
			switch {
			case snap.Player == (gridmap.Position{Row: r, Col: c}):
				sb.WriteString(playerStyle.Render(string(gridmap.PlayerGlyph)))
				continue
			case cell == gridmap.SpawnGlyph && snap.Player.Valid():
				cell = 'f'
			}
			glyph, style := mapGlyph(cell)
			sb.WriteString(style.Render(glyph))
		}
		if r < snap.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
