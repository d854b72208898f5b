package maze

import (
	"fmt"

	"github.com/tatianab/maze-game/internal/gridmap"
	"github.com/tatianab/maze-game/internal/models"
)

// Armory rewards.
const (
	WeaponItem   = "Iron Longsword"
	WeaponPoints = 50
	WeaponGlyph  = 'W'
)

// ArmoryState tracks whether the weapon has been taken.
type ArmoryState int

const (
	ArmoryUntouched ArmoryState = iota
	ArmoryLooted
)

func (s ArmoryState) String() string {
	switch s {
	case ArmoryUntouched:
		return "untouched"
	case ArmoryLooted:
		return "looted"
	default:
		return "unknown"
	}
}

// Armory holds the weapon. It can be looted once and examined.
type Armory struct {
	BaseRoom
	text  models.ArmoryText
	state ArmoryState
}

// NewArmory returns an untouched armory using content for its text.
func NewArmory(content *models.Content) *Armory {
	return &Armory{
		BaseRoom: newBaseRoom(content.Armory.Name, content),
		text:     content.Armory,
	}
}

// State reports whether the weapon has been taken.
func (a *Armory) State() ArmoryState {
	return a.state
}

// Capabilities returns loot and interact.
func (a *Armory) Capabilities() Capabilities {
	return Capabilities{Loot: a, Interact: a}
}

// Describe frames the room text around the current map.
func (a *Armory) Describe() string {
	return a.describe(a.text.RoomText, "")
}

// SensoryDescription returns the first-visit narrative.
func (a *Armory) SensoryDescription() string {
	return a.text.Sensory
}

// Loot hands over the weapon the first time and refuses afterwards.
func (a *Armory) Loot(p *models.Player) string {
	if a.state == ArmoryLooted {
		return a.text.AlreadyLooted
	}
	p.AddItem(WeaponItem)
	p.AddScore(WeaponPoints)
	a.state = ArmoryLooted
	if a.grid != nil {
		if row, col, ok := a.grid.Find(gridmap.Objects, WeaponGlyph); ok {
			a.grid.ClearObject(row, col)
		}
	}
	return fmt.Sprintf(a.text.Looted, WeaponItem, WeaponPoints)
}

// Interact examines the weapon racks.
func (a *Armory) Interact(_ *models.Player) string {
	if a.state == ArmoryLooted {
		return a.text.Examined
	}
	return a.text.Examine
}
