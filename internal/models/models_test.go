package models

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tatianab/maze-game/assets"
)

func TestParseEmbeddedContent(t *testing.T) {
	c, err := ParseContent(assets.Content)
	if err != nil {
		t.Fatalf("Failed to parse embedded content: %v", err)
	}

	if c.Armory.Name != "Weapon Chamber" {
		t.Errorf("Expected armory name %q, got %q", "Weapon Chamber", c.Armory.Name)
	}
	if len(c.Library.Dialogues) != 3 {
		t.Errorf("Expected 3 dialogues, got %d", len(c.Library.Dialogues))
	}
	if !strings.Contains(c.Library.Dialogues[1], "left flank") {
		t.Errorf("Dialogue order changed: %q", c.Library.Dialogues[1])
	}
	if c.Throne.Victory.Enlightened == "" || c.Throne.Defeat.Unarmed == "" {
		t.Errorf("Expected tiered outcome texts to be present")
	}
	if c.Exits.Trapped != "You are trapped with no exits!" {
		t.Errorf("Unexpected trapped text %q", c.Exits.Trapped)
	}
}

func TestParseContentRejectsUnknownFields(t *testing.T) {
	data := append([]byte(nil), assets.Content...)
	data = append(data, []byte("\nsurprise: true\n")...)

	if _, err := ParseContent(data); err == nil {
		t.Fatal("Expected an error for an unknown field")
	}
}

func TestParseContentValidates(t *testing.T) {
	_, err := ParseContent([]byte("placeholder: \"[none]\"\n"))
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	for _, want := range []string{"armory.name", "library.dialogues"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, assets.Content, 0644); err != nil {
		t.Fatalf("Failed to write content: %v", err)
	}

	c, err := LoadContent(path)
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}
	if c.Throne.Name != "Boss Chamber" {
		t.Errorf("Expected throne name %q, got %q", "Boss Chamber", c.Throne.Name)
	}

	if _, err := LoadContent(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestGameHistoryAppend(t *testing.T) {
	var h GameHistory
	for _, action := range []string{"loot", "east", "interact", "east"} {
		h.Append(HistoryEntry{PlayerAction: action}, 3)
	}

	if len(h.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(h.Entries))
	}
	if h.Entries[0].PlayerAction != "east" {
		t.Errorf("Expected oldest kept entry to be %q, got %q", "east", h.Entries[0].PlayerAction)
	}
	if h.Turns() != 4 {
		t.Errorf("Expected 4 turns, got %d", h.Turns())
	}
}

func TestGameHistoryTurnsOnCopy(t *testing.T) {
	snapshot := func() GameHistory {
		return GameHistory{Dropped: 2, Entries: []HistoryEntry{{PlayerAction: "loot"}}}
	}

	if got := snapshot().Turns(); got != 3 {
		t.Errorf("Expected 3 turns, got %d", got)
	}
}

func TestGameStateHasNoSerialisationTags(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[GameState](),
		reflect.TypeFor[HistoryEntry](),
		reflect.TypeFor[GameHistory](),
	} {
		for i := range typ.NumField() {
			if tag := typ.Field(i).Tag; tag != "" {
				t.Errorf("Unexpected tag %q on %s.%s", tag, typ.Name(), typ.Field(i).Name)
			}
		}
	}
}
