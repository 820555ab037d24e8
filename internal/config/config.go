// Package config provides YAML-based configuration loading and
// difficulty presets for the Klotski game.
package config

// KlotskiConfig contains all configuration for the Klotski game.
type KlotskiConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// BoardConfig defines how the board is drawn in the terminal.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per board cell
	CellHeight int `yaml:"cell_height"` // Terminal rows per board cell
}

// GameplayConfig defines gameplay options.
type GameplayConfig struct {
	StartLevel    string `yaml:"start_level"`     // Level ID to open first, empty for the first level
	Hints         bool   `yaml:"hints"`           // Allow the solver-backed hint key
	HintMaxStates int    `yaml:"hint_max_states"` // Search bound for a single hint
}

// LevelsConfig points at additional level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Directory with extra YAML levels, merged over the built-in set
}

const (
	minCellWidth  = 2
	maxCellWidth  = 16
	minCellHeight = 1
	maxCellHeight = 8

	minHintStates = 1_000
	maxHintStates = 5_000_000
)

// Validate clamps values into usable ranges and fills zero fields with defaults.
func (c *KlotskiConfig) Validate() {
	def := DefaultKlotskiConfig()

	if c.Board.CellWidth == 0 {
		c.Board.CellWidth = def.Board.CellWidth
	}
	if c.Board.CellHeight == 0 {
		c.Board.CellHeight = def.Board.CellHeight
	}
	c.Board.CellWidth = clamp(c.Board.CellWidth, minCellWidth, maxCellWidth)
	c.Board.CellHeight = clamp(c.Board.CellHeight, minCellHeight, maxCellHeight)

	if c.Gameplay.HintMaxStates == 0 {
		c.Gameplay.HintMaxStates = def.Gameplay.HintMaxStates
	}
	c.Gameplay.HintMaxStates = clamp(c.Gameplay.HintMaxStates, minHintStates, maxHintStates)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
