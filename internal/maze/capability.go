package maze

import "github.com/tatianab/maze-game/internal/models"

// Lootable rooms hold something the player can take.
type Lootable interface {
	Loot(p *models.Player) string
}

// Interactable rooms hold something the player can examine or talk to.
type Interactable interface {
	Interact(p *models.Player) string
}

// Exitable rooms end the game when left.
type Exitable interface {
	Exit(p *models.Player) string
}

// Capabilities is the fixed set of operations a chamber supports. A nil
// entry means the capability is absent.
type Capabilities struct {
	Loot     Lootable
	Interact Interactable
	Exit     Exitable
}

// Names lists the present capabilities as command words.
func (c Capabilities) Names() []string {
	var names []string
	if c.Loot != nil {
		names = append(names, "loot")
	}
	if c.Interact != nil {
		names = append(names, "interact")
	}
	if c.Exit != nil {
		names = append(names, "fight")
	}
	return names
}

// Dice produces the uniform draw for the final encounter. *rand.Rand from
// math/rand/v2 satisfies it.
type Dice interface {
	IntN(n int) int
}

// LessonCounter exposes how many lessons the player has taken.
type LessonCounter interface {
	Lessons() int
}
