package models

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content holds every piece of narrative text the game prints.
type Content struct {
	Placeholder string      `yaml:"placeholder"`
	Rejections  Rejections  `yaml:"rejections"`
	Exits       ExitsText   `yaml:"exits"`
	Armory      ArmoryText  `yaml:"armory"`
	Library     LibraryText `yaml:"library"`
	Throne      ThroneText  `yaml:"throne"`
}

// Rejections are the fixed replies for commands that cannot apply.
type Rejections struct {
	Loot     string `yaml:"loot"`
	Interact string `yaml:"interact"`
	Exit     string `yaml:"exit"`
	Finished string `yaml:"finished"`
	Unknown  string `yaml:"unknown"`
	Blocked  string `yaml:"blocked"`
	NoDoor   string `yaml:"no_door"`
	Locked   string `yaml:"locked"`
}

type ExitsText struct {
	Prefix  string `yaml:"prefix"`
	Trapped string `yaml:"trapped"`
}

// RoomText is shared by all chambers.
type RoomText struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Legend      string `yaml:"legend"`
	Description string `yaml:"description"`
	Sensory     string `yaml:"sensory"`
}

type ArmoryText struct {
	RoomText      `yaml:",inline"`
	Examine       string `yaml:"examine"`
	Examined      string `yaml:"examined"`
	Looted        string `yaml:"looted"` // item name, points
	AlreadyLooted string `yaml:"already_looted"`
}

type LibraryText struct {
	RoomText  `yaml:",inline"`
	Dialogues []string `yaml:"dialogues"`
	Speech    string   `yaml:"speech"` // dialogue line, points
	Exhausted string   `yaml:"exhausted"`
}

// ThroneText carries the encounter narratives. Victory and defeat texts are
// tiered by how well the player prepared.
type ThroneText struct {
	RoomText `yaml:",inline"`
	Reveal   string `yaml:"reveal"`
	Nudge    string `yaml:"nudge"`
	Victory  struct {
		Unprepared  string `yaml:"unprepared"`
		Prepared    string `yaml:"prepared"`
		Enlightened string `yaml:"enlightened"`
	} `yaml:"victory"`
	Defeat struct {
		Unarmed    string `yaml:"unarmed"`
		Unprepared string `yaml:"unprepared"`
		Prepared   string `yaml:"prepared"`
	} `yaml:"defeat"`
	VictoryScore string `yaml:"victory_score"` // final score
	DefeatScore  string `yaml:"defeat_score"`  // final score
}

// ParseContent decodes and validates a YAML content document.
func ParseContent(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadContent reads a content file from disk.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(data)
}

// Validate reports the fields the game cannot run without.
func (c *Content) Validate() error {
	var errs []error
	required := map[string]string{
		"placeholder":         c.Placeholder,
		"rejections.loot":     c.Rejections.Loot,
		"rejections.interact": c.Rejections.Interact,
		"rejections.exit":     c.Rejections.Exit,
		"exits.trapped":       c.Exits.Trapped,
		"armory.name":         c.Armory.Name,
		"library.name":        c.Library.Name,
		"throne.name":         c.Throne.Name,
	}
	for field, value := range required {
		if value == "" {
			errs = append(errs, fmt.Errorf("content: %s is required", field))
		}
	}
	if len(c.Library.Dialogues) == 0 {
		errs = append(errs, errors.New("content: library.dialogues must not be empty"))
	}
	return errors.Join(errs...)
}
