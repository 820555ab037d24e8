package klotski

import "github.com/vovakirdan/tui-klotski/internal/games/klotski/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StateFinished    GameStateType = "finished"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateNoLevels    GameStateType = "no_levels"
)

// Snapshot captures the game state for tests and replay checks.
type Snapshot struct {
	Tick      uint64
	Level     string
	Index     int // 0-based position in the level set
	Cursor    core.Pos
	Grabbed   bool
	Undo      int // moves on the undo stack
	HintsUsed int
	Hint      *core.Move // visible hint, nil when none is shown
	Board     string     // Board.String() of the live board
	Message   string
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.noLevels:
		state = StateNoLevels
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished:
		state = StateFinished
	case g.paused:
		state = StatePaused
	case g.solved:
		state = StateSolved
	}

	snap := Snapshot{
		Tick:      g.tick,
		Level:     g.level.ID,
		Index:     g.levelIndex,
		Cursor:    g.cursor,
		Grabbed:   g.grabbed,
		Undo:      len(g.history),
		HintsUsed: g.hintsUsed,
		Message:   g.message,
		State:     state,
	}
	if g.showHint && len(g.hintPath) > 0 {
		h := g.hintPath[0]
		snap.Hint = &h
	}
	if g.ctrl != nil {
		snap.Board = g.ctrl.Board().String()
	}
	return snap
}
