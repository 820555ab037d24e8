// Package formats provides level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

// YAMLLevel is the on-disk structure of a level file.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Order      int               `yaml:"order,omitempty"`
	Difficulty string            `yaml:"difficulty,omitempty"`
	Goal       *YAMLGoal         `yaml:"goal,omitempty"`
	Layout     []string          `yaml:"layout"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// YAMLGoal places a piece kind at an anchor.
type YAMLGoal struct {
	Kind int `yaml:"kind"`
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
}

// Level is a parsed level with a validated layout.
type Level struct {
	ID         string
	Name       string
	Order      int
	Difficulty string
	Layout     [][]core.Kind
	Goal       *core.Goal
	Metadata   map[string]string
}

// ParseYAML parses and validates a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("level has no id")
	}

	layout, err := core.ParseLayout(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}
	board, err := core.NewBoard(layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	level := Level{
		ID:         yl.ID,
		Name:       yl.Name,
		Order:      yl.Order,
		Difficulty: yl.Difficulty,
		Layout:     layout,
		Metadata:   yl.Metadata,
	}
	if level.Name == "" {
		level.Name = yl.ID
	}
	if level.Difficulty == "" {
		level.Difficulty = "normal"
	}

	if yl.Goal != nil {
		if yl.Goal.Kind < int(core.Single) || yl.Goal.Kind > int(core.Big) {
			return Level{}, fmt.Errorf("level %s: goal kind %d: %w", yl.ID, yl.Goal.Kind, core.ErrUnknownKind)
		}
		goal := core.Goal{Kind: core.Kind(yl.Goal.Kind), Anchor: core.P(yl.Goal.Row, yl.Goal.Col)}
		w, h := goal.Kind.Size()
		if !board.RegionInBounds(goal.Anchor, w, h) {
			return Level{}, fmt.Errorf("level %s: goal %s: %w", yl.ID, goal.Anchor, core.ErrOutOfBounds)
		}
		level.Goal = &goal
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
