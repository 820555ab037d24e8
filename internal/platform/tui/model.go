package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

// Model is the Bubble Tea model for running a puzzle.
// Keys are applied to the game as soon as they arrive; the tick loop only
// keeps the game clock running between keys.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	allowBack  bool // B/Esc on a paused or solved game returns to the caller
	solveSaved bool // Whether the current solve has been logged
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// WithBack lets B/Esc leave a paused or solved game.
func (m Model) WithBack() Model {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps a key to an action and steps the game with it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && frame.Has(core.ActionBack) && (m.gameState.Paused || m.gameState.Solved) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if frame.Empty() {
		return m, nil
	}
	m.step(frame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can re-layout keep their progress.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the game clock.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.step(core.NewInputFrame())
	return m, tickCmd(m.config.TickRate)
}

// step runs one game step and logs a solve once per solved attempt.
func (m *Model) step(frame core.InputFrame) {
	result := m.game.Step(frame)
	m.gameState = result.State

	if !m.gameState.Solved {
		m.solveSaved = false
		return
	}
	if m.solveSaved {
		return
	}
	m.solveSaved = true
	if m.store != nil {
		_, m.saveErr = m.store.RecordSolve(m.game.ID(), m.gameState.Level, m.config.Player, m.gameState.HintsUsed)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".klotski", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.Level, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveError returns the error of the last failed solve log, if any.
func (m Model) SaveError() error {
	return m.saveErr
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the user asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, allowBack bool) (bool, error) {
	model := NewModel(game, store, cfg)
	if allowBack {
		model = model.WithBack()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), fm.SaveError()
	}
	return false, nil
}
