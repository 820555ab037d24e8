// Package klotski provides the Klotski sliding-block puzzle for the terminal.
package klotski

import (
	"context"
	"errors"
	"time"

	platformcore "github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/config"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

// GameID is the registry identifier, also stored with every solve record.
const GameID = "klotski"

// hintTimeout caps how long a hint may block the tick loop.
const hintTimeout = 3 * time.Second

// Game implements the Klotski puzzle on top of core.Controller.
type Game struct {
	cfg    config.KlotskiConfig
	preset config.DifficultyPreset

	// Level set
	fixedLevels []levels.Level // injected levels, nil means load from disk
	allLevels   []levels.Level
	levelIndex  int
	level       levels.Level
	ctrl        *core.Controller

	// Interaction state
	cursor   core.Pos
	grabbed  bool
	history  []core.Move // undo stack, most recent last
	lastMove *core.Move
	hintPath []core.Move // cached solution from the current board
	showHint bool
	message  string

	// Status
	tick      uint64
	hintsUsed int
	solved    bool
	finished  bool // every level in the set is solved
	paused    bool
	tooSmall  bool
	noLevels  bool

	// Layout
	screenW   int
	screenH   int
	cellW     int
	cellH     int
	hudHeight int
	offsetX   int
	offsetY   int
}

// Package-level variables for configuration
var (
	selectedStartLevel string
	selectedConfigPath string
	selectedPreset     config.DifficultyPreset
)

// SetStartLevel selects the level ID the next Reset opens. It is consumed
// by that Reset.
func SetStartLevel(id string) {
	selectedStartLevel = id
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() string {
	return selectedStartLevel
}

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficultyPreset restricts the level set to one difficulty.
func SetDifficultyPreset(p config.DifficultyPreset) {
	selectedPreset = p
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Klotski game that loads its levels on Reset.
func New() *Game {
	return &Game{hudHeight: 4}
}

// NewWithLevels creates a game over a fixed level set, bypassing the
// loaders. The default config is used.
func NewWithLevels(lvls []levels.Level) *Game {
	g := New()
	g.fixedLevels = lvls
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Klotski"
}

// Reset loads configuration and levels and opens the start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.finished = false
	g.paused = false
	g.noLevels = false

	if g.fixedLevels != nil {
		g.cfg = config.DefaultKlotskiConfig()
		g.allLevels = g.fixedLevels
	} else {
		kcfg, err := config.LoadKlotski(selectedConfigPath)
		if err != nil {
			kcfg = config.DefaultKlotskiConfig()
		}
		g.cfg = kcfg
		g.allLevels = LoadLevels(kcfg, selectedPreset)
	}
	g.preset = selectedPreset

	if len(g.allLevels) == 0 {
		g.noLevels = true
		g.ctrl = nil
		return
	}

	start := cfg.Level
	if start == "" {
		start = selectedStartLevel
	}
	if start == "" {
		start = g.cfg.Gameplay.StartLevel
	}
	selectedStartLevel = "" // Reset after use

	g.levelIndex = 0
	for i, lvl := range g.allLevels {
		if lvl.ID == start {
			g.levelIndex = i
			break
		}
	}

	g.loadCurrentLevel()
}

// LoadLevels returns the built-in levels merged with the configured level
// directory and filtered by preset. Unreadable sources are skipped.
func LoadLevels(cfg config.KlotskiConfig, preset config.DifficultyPreset) []levels.Level {
	all, err := levels.Builtin().LoadAll()
	if err != nil {
		all = nil
	}
	if cfg.Levels.Dir != "" {
		if extra, err := levels.NewLoader(cfg.Levels.Dir).LoadAll(); err == nil {
			all = levels.Merge(all, extra)
		}
	}

	filtered := make([]levels.Level, 0, len(all))
	for _, lvl := range all {
		if preset.Matches(lvl.Difficulty) {
			filtered = append(filtered, lvl)
		}
	}
	return filtered
}

// loadCurrentLevel builds a board and controller for the level at levelIndex.
func (g *Game) loadCurrentLevel() {
	g.level = g.allLevels[g.levelIndex]

	board, err := g.level.NewBoard()
	if err != nil {
		// Loaders validate layouts, so only injected levels can get here.
		g.noLevels = true
		g.ctrl = nil
		return
	}
	g.ctrl = core.NewController(board, g)
	g.resetAttempt()
	g.cursor = core.Pos{}
	if pieces := board.Pieces(); len(pieces) > 0 {
		g.cursor = pieces[0].Anchor
	}
	g.calculateLayout()
}

// resetAttempt clears per-attempt state.
func (g *Game) resetAttempt() {
	g.grabbed = false
	g.history = g.history[:0]
	g.lastMove = nil
	g.hintPath = nil
	g.showHint = false
	g.hintsUsed = 0
	g.solved = false
	g.message = ""
}

// Resize recomputes the layout for a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.ctrl != nil {
		g.calculateLayout()
	}
}

// calculateLayout picks cell sizes that fit the screen, shrinking from the
// configured size down to the minimum before giving up.
func (g *Game) calculateLayout() {
	cols, rows := g.level.Width(), g.level.Height()
	g.cellW = g.cfg.Board.CellWidth
	g.cellH = g.cfg.Board.CellHeight

	fits := func() bool {
		return cols*g.cellW+2 <= g.screenW && g.hudHeight+rows*g.cellH+2+2 <= g.screenH
	}
	for !fits() && (g.cellW > 2 || g.cellH > 1) {
		if g.cellW > 2 {
			g.cellW--
		}
		if g.cellH > 1 && !fits() {
			g.cellH--
		}
	}

	if !fits() {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	boardW := cols*g.cellW + 2
	boardH := rows*g.cellH + 2
	g.offsetX = (g.screenW - boardW) / 2
	g.offsetY = g.hudHeight + (g.screenH-g.hudHeight-boardH-2)/2
}

// Step processes one frame of input.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.noLevels || g.ctrl == nil || input.Empty() {
		return platformcore.StepResult{State: g.State(), Redraw: !input.Empty()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.finished {
		return platformcore.StepResult{State: g.State(), Redraw: true}
	}

	if input.Has(platformcore.ActionRestart) {
		g.ctrl.Restart()
		return platformcore.StepResult{State: g.State(), Redraw: true}
	}

	if g.solved {
		if input.Has(platformcore.ActionNextLevel) || input.Has(platformcore.ActionSelect) {
			g.nextLevel()
		}
		return platformcore.StepResult{State: g.State(), Redraw: true}
	}

	switch {
	case input.Has(platformcore.ActionHint):
		g.requestHint()
	case input.Has(platformcore.ActionUndo):
		g.undo()
	case input.Has(platformcore.ActionNextPiece):
		g.cyclePiece(1)
	case input.Has(platformcore.ActionPrevPiece):
		g.cyclePiece(-1)
	case input.Has(platformcore.ActionSelect):
		g.toggleGrab()
	case input.Has(platformcore.ActionBack):
		g.grabbed = false
	}

	for _, a := range [...]platformcore.Action{
		platformcore.ActionUp, platformcore.ActionDown,
		platformcore.ActionLeft, platformcore.ActionRight,
	} {
		if input.Has(a) {
			g.handleDirection(actionDirection(a))
		}
	}

	return platformcore.StepResult{State: g.State(), Redraw: true}
}

func actionDirection(a platformcore.Action) core.Direction {
	switch a {
	case platformcore.ActionDown:
		return core.Down
	case platformcore.ActionLeft:
		return core.Left
	case platformcore.ActionRight:
		return core.Right
	default:
		return core.Up
	}
}

// handleDirection slides the grabbed piece or moves the cursor.
func (g *Game) handleDirection(d core.Direction) {
	if g.solved {
		return
	}
	if !g.grabbed {
		next := g.cursor.Step(d)
		if g.ctrl.Board().InBounds(next) {
			g.cursor = next
		}
		return
	}

	pc, ok := g.ctrl.Board().PieceAt(g.cursor)
	if !ok {
		g.grabbed = false
		return
	}
	moved, err := g.ctrl.Move(pc.Anchor.Row, pc.Anchor.Col, d)
	if err != nil || !moved {
		g.message = "Blocked"
		return
	}
	g.history = append(g.history, core.Move{From: pc.Anchor, To: pc.Anchor.Step(d), Kind: pc.Kind, Dir: d})
}

// toggleGrab grabs the piece under the cursor or releases the grabbed one.
func (g *Game) toggleGrab() {
	if g.grabbed {
		g.grabbed = false
		return
	}
	if _, ok := g.ctrl.Board().PieceAt(g.cursor); ok {
		g.grabbed = true
		g.message = ""
	}
}

// cyclePiece moves the cursor to the anchor of the next or previous piece
// in row-major order.
func (g *Game) cyclePiece(step int) {
	pieces := g.ctrl.Board().Pieces()
	if len(pieces) == 0 {
		return
	}

	current := -1
	for i, pc := range pieces {
		if pc.Contains(g.cursor) {
			current = i
			break
		}
	}

	var next int
	switch {
	case current >= 0:
		next = (current + step + len(pieces)) % len(pieces)
	case step > 0:
		next = 0
	default:
		next = len(pieces) - 1
	}
	g.cursor = pieces[next].Anchor
}

// undo reverts the most recent move.
func (g *Game) undo() {
	if len(g.history) == 0 {
		g.message = "Nothing to undo"
		return
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	moved, err := g.ctrl.Apply(last.Inverse())
	if err != nil || !moved {
		// History no longer matches the board; drop it.
		g.history = g.history[:0]
		g.message = "Undo failed"
		return
	}
	g.cursor = last.From
}

// requestHint shows the first move of a shortest solution from the current board.
func (g *Game) requestHint() {
	if !g.cfg.Gameplay.Hints {
		g.message = "Hints are disabled"
		return
	}
	if g.level.Goal == nil {
		g.message = "This level has no goal"
		return
	}

	if len(g.hintPath) == 0 {
		ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
		defer cancel()

		path, err := core.Solve(ctx, g.ctrl.Board(), *g.level.Goal, core.SolveOptions{
			MaxStates: g.cfg.Gameplay.HintMaxStates,
		})
		switch {
		case errors.Is(err, core.ErrNoSolution):
			g.message = "No solution from here, try undo or restart"
			return
		case err != nil:
			g.message = "Hint search gave up"
			return
		case len(path) == 0:
			g.message = "Already solved"
			return
		}
		g.hintPath = path
	}

	g.hintsUsed++
	g.showHint = true
	g.grabbed = false
	g.cursor = g.hintPath[0].From
	g.message = "Hint: " + describeMove(g.hintPath[0])
}

// nextLevel advances to the next level in the set.
func (g *Game) nextLevel() {
	if g.levelIndex+1 >= len(g.allLevels) {
		g.finished = true
		return
	}
	g.levelIndex++
	g.loadCurrentLevel()
}

// PieceMoved implements core.Listener.
func (g *Game) PieceMoved(m core.Move) {
	g.lastMove = &m
	g.showHint = false
	if len(g.hintPath) > 0 && g.hintPath[0] == m {
		g.hintPath = g.hintPath[1:]
	} else {
		g.hintPath = nil
	}

	if g.grabbed {
		dr, dc := m.Dir.Delta()
		g.cursor = g.cursor.Add(dr, dc)
	}
	g.message = ""

	if g.level.Goal != nil && g.level.Goal.Reached(g.ctrl.Board()) {
		g.solved = true
		g.grabbed = false
		g.message = "Solved!"
	}
}

// BoardReset implements core.Listener.
func (g *Game) BoardReset() {
	g.resetAttempt()
	if pieces := g.ctrl.Board().Pieces(); len(pieces) > 0 {
		g.cursor = pieces[0].Anchor
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Level:     g.level.ID,
		Solved:    g.solved,
		HintsUsed: g.hintsUsed,
		Paused:    g.paused,
	}
}

// Board exposes the live board, for tests and tools.
func (g *Game) Board() *core.Board {
	if g.ctrl == nil {
		return nil
	}
	return g.ctrl.Board()
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Levels returns the level set in play order.
func (g *Game) Levels() []levels.Level {
	return g.allLevels
}
