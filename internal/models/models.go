package models

import "github.com/tatianab/maze-game/internal/gridmap"

// Status values reported after each turn.
const (
	StatusPlaying = "PLAYING"
	StatusWon     = "WON"
	StatusLost    = "LOST"
)

// GameState is a read-only snapshot of the game handed to presentation layers.
type GameState struct {
	GameID      string
	Room        string
	Description string
	Exits       string
	Directions  []string
	Actions     []string // command words the room accepts
	Score       int
	Inventory   []string
	Status      string // "PLAYING", "WON", "LOST"
	Finished    bool
	Map         *gridmap.Snapshot
}

// HistoryEntry represents a single turn in the game.
type HistoryEntry struct {
	PlayerAction string
	Outcome      string
	Status       string
	Room         string
	Score        int
	Inventory    []string // inventory after the turn
}

// GameHistory keeps the most recent turns of a game.
type GameHistory struct {
	Dropped int // turns trimmed from the front
	Entries []HistoryEntry
}

// Append adds an entry, discarding the oldest ones beyond limit.
func (h *GameHistory) Append(entry HistoryEntry, limit int) {
	h.Entries = append(h.Entries, entry)
	if limit > 0 && len(h.Entries) > limit {
		over := len(h.Entries) - limit
		h.Dropped += over
		h.Entries = append([]HistoryEntry(nil), h.Entries[over:]...)
	}
}

// Turns returns the total number of turns recorded, including trimmed ones.
func (h GameHistory) Turns() int {
	return h.Dropped + len(h.Entries)
}
