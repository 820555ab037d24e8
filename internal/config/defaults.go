package config

import (
	_ "embed"
)

//go:embed defaults/klotski.yaml
var defaultKlotskiYAML []byte

// DefaultKlotskiConfig returns the default Klotski configuration.
func DefaultKlotskiConfig() KlotskiConfig {
	return KlotskiConfig{
		Board: BoardConfig{
			CellWidth:  6,
			CellHeight: 3,
		},
		Gameplay: GameplayConfig{
			StartLevel:    "",
			Hints:         true,
			HintMaxStates: 500_000,
		},
	}
}
