package maze

import (
	"fmt"
	"math/rand/v2"

	"github.com/tatianab/maze-game/internal/models"
)

// Encounter tuning.
const (
	VictoryPoints  = 500
	BaseChance     = 50
	LessonChance   = 15
	MaxChance      = 95
	encounterRange = 100
)

// ThroneState records whether the creature has revealed itself.
type ThroneState int

const (
	ThroneDormant ThroneState = iota
	ThroneAwakened
)

func (s ThroneState) String() string {
	switch s {
	case ThroneDormant:
		return "dormant"
	case ThroneAwakened:
		return "awakened"
	default:
		return "unknown"
	}
}

// EncounterResult is the outcome of the most recent fight.
type EncounterResult int

const (
	EncounterNone EncounterResult = iota
	EncounterVictory
	EncounterDefeat
)

func (r EncounterResult) String() string {
	switch r {
	case EncounterNone:
		return "none"
	case EncounterVictory:
		return "victory"
	case EncounterDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// SuccessChance returns the percentage chance of winning the encounter.
// Without the weapon the fight is lost outright.
func SuccessChance(hasWeapon bool, lessons int) int {
	if !hasWeapon {
		return 0
	}
	if lessons < 0 {
		lessons = 0
	}
	return min(BaseChance+lessons*LessonChance, MaxChance)
}

// ThroneRoom holds the final encounter. Leaving it means fighting.
type ThroneRoom struct {
	BaseRoom
	text     models.ThroneText
	state    ThroneState
	lessons  LessonCounter
	dice     Dice
	result   EncounterResult
	lastRoll int
}

// NewThroneRoom returns a dormant throne room. A nil dice uses the global
// math/rand/v2 source.
func NewThroneRoom(content *models.Content, dice Dice) *ThroneRoom {
	if dice == nil {
		dice = globalDice{}
	}
	return &ThroneRoom{
		BaseRoom: newBaseRoom(content.Throne.Name, content),
		text:     content.Throne,
		dice:     dice,
		lastRoll: -1,
	}
}

// SetLessonCounter injects the source of the lesson count.
func (t *ThroneRoom) SetLessonCounter(lc LessonCounter) {
	t.lessons = lc
}

// State reports whether the creature has revealed itself.
func (t *ThroneRoom) State() ThroneState {
	return t.state
}

// Result returns the outcome of the latest exit attempt.
func (t *ThroneRoom) Result() EncounterResult {
	return t.result
}

// LastRoll returns the latest draw, or -1 before any fight.
func (t *ThroneRoom) LastRoll() int {
	return t.lastRoll
}

// Capabilities returns interact and exit.
func (t *ThroneRoom) Capabilities() Capabilities {
	return Capabilities{Interact: t, Exit: t}
}

// Describe frames the room text around the current map.
func (t *ThroneRoom) Describe() string {
	return t.describe(t.text.RoomText, "")
}

// SensoryDescription returns the first-visit narrative.
func (t *ThroneRoom) SensoryDescription() string {
	return t.text.Sensory
}

// Interact wakes the creature, then nudges the player toward the fight.
func (t *ThroneRoom) Interact(_ *models.Player) string {
	if t.state == ThroneDormant {
		t.state = ThroneAwakened
		return t.text.Reveal
	}
	return t.text.Nudge
}

func (t *ThroneRoom) lessonCount() int {
	if t.lessons == nil {
		return 0
	}
	return t.lessons.Lessons()
}

// Chance returns the player's current chance of victory.
func (t *ThroneRoom) Chance(p *models.Player) int {
	return SuccessChance(p.HasItem(WeaponItem), t.lessonCount())
}

// Exit fights the creature. The chance is fixed before the single draw.
func (t *ThroneRoom) Exit(p *models.Player) string {
	hasWeapon := p.HasItem(WeaponItem)
	lessons := t.lessonCount()
	chance := SuccessChance(hasWeapon, lessons)

	roll := t.dice.IntN(encounterRange)
	t.lastRoll = roll

	if roll < chance {
		t.result = EncounterVictory
		p.AddScore(VictoryPoints)
		return t.victoryText(lessons) + "\n" + fmt.Sprintf(t.text.VictoryScore, p.Score())
	}
	t.result = EncounterDefeat
	return t.defeatText(hasWeapon, lessons) + "\n" + fmt.Sprintf(t.text.DefeatScore, p.Score())
}

func (t *ThroneRoom) victoryText(lessons int) string {
	switch {
	case lessons >= 3:
		return t.text.Victory.Enlightened
	case lessons > 0:
		return t.text.Victory.Prepared
	default:
		return t.text.Victory.Unprepared
	}
}

func (t *ThroneRoom) defeatText(hasWeapon bool, lessons int) string {
	switch {
	case !hasWeapon:
		return t.text.Defeat.Unarmed
	case lessons > 0:
		return t.text.Defeat.Prepared
	default:
		return t.text.Defeat.Unprepared
	}
}

type globalDice struct{}

func (globalDice) IntN(n int) int {
	return rand.IntN(n)
}
