package maze

import (
	"fmt"

	"github.com/tatianab/maze-game/internal/models"
)

// LessonPoints is awarded for every line of dialogue heard.
const LessonPoints = 25

// Library hosts the sage. Each interaction yields the next line of dialogue
// until there are none left.
type Library struct {
	BaseRoom
	text    models.LibraryText
	lessons int
}

// NewLibrary returns a library whose sage has taught nothing yet.
func NewLibrary(content *models.Content) *Library {
	return &Library{
		BaseRoom: newBaseRoom(content.Library.Name, content),
		text:     content.Library,
	}
}

// Capabilities returns interact only.
func (l *Library) Capabilities() Capabilities {
	return Capabilities{Interact: l}
}

// Describe frames the room text around the current map.
func (l *Library) Describe() string {
	return l.describe(l.text.RoomText, "")
}

// SensoryDescription returns the first-visit narrative.
func (l *Library) SensoryDescription() string {
	return l.text.Sensory
}

// Lessons returns how many dialogue lines have been heard.
func (l *Library) Lessons() int {
	return l.lessons
}

// MaxLessons returns the number of dialogue lines available.
func (l *Library) MaxLessons() int {
	return len(l.text.Dialogues)
}

// Interact delivers the next lesson and awards LessonPoints for it.
func (l *Library) Interact(p *models.Player) string {
	if l.lessons >= len(l.text.Dialogues) {
		return l.text.Exhausted
	}
	line := l.text.Dialogues[l.lessons]
	l.lessons++
	p.AddScore(LessonPoints)
	return fmt.Sprintf(l.text.Speech, line, LessonPoints)
}
