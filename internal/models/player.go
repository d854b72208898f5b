package models

import (
	"fmt"
	"slices"
	"strings"
)

// Player tracks the score and inventory of the single adventurer.
type Player struct {
	score     int
	inventory []string
}

// NewPlayer returns a player with no points and an empty inventory.
func NewPlayer() *Player {
	return &Player{}
}

// AddScore awards points. Negative awards are ignored so the score never
// decreases.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.score += points
	}
}

// AddItem appends an item. Duplicates are kept.
func (p *Player) AddItem(item string) {
	p.inventory = append(p.inventory, item)
}

// HasItem reports whether item was ever picked up.
func (p *Player) HasItem(item string) bool {
	return slices.Contains(p.inventory, item)
}

func (p *Player) Score() int {
	return p.score
}

// Inventory returns a copy of the items in pickup order.
func (p *Player) Inventory() []string {
	return slices.Clone(p.inventory)
}

// InventoryText renders the inventory as a numbered list.
func (p *Player) InventoryText() string {
	if len(p.inventory) == 0 {
		return "Your inventory is empty."
	}
	var sb strings.Builder
	sb.WriteString("Inventory:\n")
	for i, item := range p.inventory {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, item)
	}
	return sb.String()
}
