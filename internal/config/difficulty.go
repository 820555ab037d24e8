package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
// Presets select which levels are offered.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyAll    DifficultyPreset = "all"
)

// Presets lists the accepted presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyAll}
}

// ParseDifficulty converts a flag value into a preset.
// An empty string selects DifficultyAll.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyAll, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or all)", s)
}

// Matches reports whether a level tagged with difficulty belongs to the preset.
func (p DifficultyPreset) Matches(difficulty string) bool {
	if p == DifficultyAll || p == "" {
		return true
	}
	return strings.EqualFold(string(p), difficulty)
}

// Rank orders difficulties from easiest to hardest. Unknown tags sort last.
func Rank(difficulty string) int {
	switch DifficultyPreset(strings.ToLower(difficulty)) {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}
