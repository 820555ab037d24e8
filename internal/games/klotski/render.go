package klotski

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

// kindColors maps piece kinds to display colors.
var kindColors = map[core.Kind]platformcore.Color{
	core.Single:     platformcore.ColorCyan,
	core.Horizontal: platformcore.ColorBlue,
	core.Vertical:   platformcore.ColorMagenta,
	core.Big:        platformcore.ColorRed,
}

// kindFill is the rune used for a piece's interior.
var kindFill = map[core.Kind]rune{
	core.Single:     '░',
	core.Horizontal: '▒',
	core.Vertical:   '▒',
	core.Big:        '▓',
}

var directionArrows = map[core.Direction]rune{
	core.Up:    '↑',
	core.Down:  '↓',
	core.Left:  '←',
	core.Right: '→',
}

// Controls returns the key help line for the current interaction mode.
func (g *Game) Controls() string {
	switch {
	case g.solved:
		return " N/Enter: Next level | R: Replay | Q: Quit"
	case g.grabbed:
		return " [MOVE] Arrows: Slide | Enter/Esc: Release | U: Undo | ?: Hint | R: Restart"
	default:
		return " [SELECT] Arrows: Cursor | Enter: Grab | Tab: Next piece | U: Undo | ?: Hint | P: Pause"
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.noLevels {
		g.renderOverlay(dst, "No levels found", "Check the levels directory or difficulty")
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderStatus(dst)

	switch {
	case g.finished:
		g.renderOverlay(dst, "All levels cleared!", "Press Q to quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.solved:
		g.renderOverlay(dst, "Solved!", "N: next level  R: replay")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Klotski | Level %d/%d: %s (%s)",
		g.levelIndex+1, len(g.allLevels), g.level.Name, g.level.Difficulty)
	if g.hintsUsed > 0 {
		hud += fmt.Sprintf(" | Hints: %d", g.hintsUsed)
	}
	if g.preset != "" {
		hud += " | Set: " + string(g.preset)
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', platformcore.ColorGray)
	}
	dst.DrawTextColor(0, 2, g.Controls(), platformcore.ColorGray)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 3, '─', platformcore.ColorGray)
	}
}

// cellRect returns the screen rectangle covering a board region.
func (g *Game) cellRect(p core.Pos, w, h int) platformcore.Rect {
	return platformcore.NewRect(
		g.offsetX+1+p.Col*g.cellW,
		g.offsetY+1+p.Row*g.cellH,
		w*g.cellW,
		h*g.cellH,
	)
}

// renderBoard draws the frame, goal, pieces, cursor and hint.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	board := g.ctrl.Board()
	frame := platformcore.NewRect(g.offsetX, g.offsetY, board.Width()*g.cellW+2, board.Height()*g.cellH+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	if goal := g.level.Goal; goal != nil {
		w, h := goal.Kind.Size()
		gr := g.cellRect(goal.Anchor, w, h)
		dst.DrawRect(gr, '·', platformcore.ColorGreen)
		// Open the frame below a goal that touches the bottom edge.
		if goal.Anchor.Row+h == board.Height() {
			for x := gr.X; x < gr.Right(); x++ {
				dst.SetColor(x, frame.Bottom()-1, ' ', platformcore.ColorDefault)
			}
		}
	}

	var hinted *core.Move
	if g.showHint && len(g.hintPath) > 0 {
		hinted = &g.hintPath[0]
	}
	focus, hasFocus := board.PieceAt(g.cursor)

	for _, pc := range board.Pieces() {
		r := g.cellRect(pc.Anchor, pc.Width(), pc.Height())
		color := kindColors[pc.Kind]
		if hinted != nil && hinted.From == pc.Anchor {
			color = platformcore.ColorBrightGreen
		}

		if r.W > 2 && r.H > 2 {
			dst.DrawRect(r.Inset(1), kindFill[pc.Kind], color)
		}
		switch {
		case hasFocus && focus == pc && g.grabbed:
			dst.DrawHeavyBox(r, platformcore.ColorBrightYellow)
		case hasFocus && focus == pc:
			dst.DrawHeavyBox(r, platformcore.ColorWhite)
		default:
			dst.DrawBox(r, color)
		}

		if hinted != nil && hinted.From == pc.Anchor {
			dst.SetColor(r.X+r.W/2, r.Y+r.H/2, directionArrows[hinted.Dir], platformcore.ColorBrightGreen)
		}
	}

	if !hasFocus {
		r := g.cellRect(g.cursor, 1, 1)
		dst.DrawBox(r, platformcore.ColorYellow)
	}
}

// renderStatus draws the message line under the board.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	if g.message == "" {
		return
	}
	y := g.offsetY + g.ctrl.Board().Height()*g.cellH + 3
	if y >= dst.Height() {
		y = dst.Height() - 1
	}
	color := platformcore.ColorYellow
	if g.solved {
		color = platformcore.ColorBrightGreen
	}
	x := (dst.Width() - len([]rune(g.message))) / 2
	dst.DrawTextColor(x, y, g.message, color)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	box := platformcore.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawHeavyBox(box, platformcore.ColorBrightYellow)
	dst.DrawTextColor(box.X+(w-len([]rune(title)))/2, box.Y+1, title, platformcore.ColorBrightYellow)
	dst.DrawTextColor(box.X+(w-len([]rune(subtitle)))/2, box.Y+3, subtitle, platformcore.ColorWhite)
}

// describeMove formats a move for the status line, e.g. "big piece at (3,1) down".
func describeMove(m core.Move) string {
	return fmt.Sprintf("%s piece at %s %s", m.Kind, m.From, m.Dir)
}
