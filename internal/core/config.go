package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Player   string // Display name of the local or SSH user
	Level    string // Level to open; empty lets the game choose
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Level     string // ID of the level being played
	Solved    bool   // Goal reached on the current level
	HintsUsed int    // Hints requested on this attempt
	Paused    bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Redraw is false when the tick changed nothing visible.
	Redraw bool
}
