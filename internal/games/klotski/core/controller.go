package core

import "fmt"

// Listener is notified by the controller after the board changes.
// The presentation layer implements it to re-render moved pieces.
type Listener interface {
	// PieceMoved is called after a successful move with the piece's new anchor in m.To.
	PieceMoved(m Move)
	// BoardReset is called after Restart restored the original layout.
	BoardReset()
}

// Controller applies moves to a board. Apart from the board and the
// listener it keeps no state between calls.
type Controller struct {
	board    *Board
	listener Listener
}

// NewController creates a controller for b. listener may be nil.
func NewController(b *Board, listener Listener) *Controller {
	return &Controller{board: b, listener: listener}
}

// Board returns the board the controller mutates.
func (c *Controller) Board() *Board {
	return c.board
}

// SetListener replaces the listener. nil disables notifications.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// Restart resets the board to its original layout.
func (c *Controller) Restart() {
	c.board.Reset()
	if c.listener != nil {
		c.listener.BoardReset()
	}
}

// Move slides the piece anchored at (row, col) one cell in direction dir.
//
// It reports false with a nil error when the anchor is empty or the
// destination is blocked or off the board; the grid is untouched then.
// An anchor outside the grid yields ErrOutOfBounds, and a cell inside a
// piece other than its top-left one yields ErrNotAnchor.
func (c *Controller) Move(row, col int, dir Direction) (bool, error) {
	k, err := c.board.ID(row, col)
	if err != nil {
		return false, fmt.Errorf("move %s: %w", dir, err)
	}
	if k == Empty {
		return false, nil
	}

	from := P(row, col)
	if pc, ok := c.board.PieceAt(from); !ok || pc.Anchor != from {
		return false, fmt.Errorf("move %s: %w: %s", dir, ErrNotAnchor, from)
	}
	w, h := k.Size()
	if !c.canMove(from, w, h, dir) {
		return false, nil
	}

	to := from.Step(dir)
	// Both regions were bounds-checked by canMove.
	_ = c.board.ClearRegion(from, w, h)
	_ = c.board.SetRegion(to, w, h, k)

	if c.listener != nil {
		c.listener.PieceMoved(Move{From: from, To: to, Kind: k, Dir: dir})
	}
	return true, nil
}

// CanMove reports whether Move(row, col, dir) would succeed, without
// touching the grid.
func (c *Controller) CanMove(row, col int, dir Direction) bool {
	k, err := c.board.ID(row, col)
	if err != nil || k == Empty {
		return false
	}
	from := P(row, col)
	if pc, ok := c.board.PieceAt(from); !ok || pc.Anchor != from {
		return false
	}
	w, h := k.Size()
	return c.canMove(from, w, h, dir)
}

// canMove checks that the footprint shifted by dir stays on the board and
// covers only empty cells or cells of the piece's own current footprint.
func (c *Controller) canMove(from Pos, w, h int, dir Direction) bool {
	to := from.Step(dir)
	if !c.board.RegionInBounds(to, w, h) {
		return false
	}

	self := Piece{Anchor: from, Kind: c.board.At(from)}
	for r := to.Row; r < to.Row+h; r++ {
		for col := to.Col; col < to.Col+w; col++ {
			cell := P(r, col)
			if c.board.At(cell) != Empty && !self.Contains(cell) {
				return false
			}
		}
	}
	return true
}

// LegalMoves lists every single-cell move available on the current board.
func (c *Controller) LegalMoves() []Move {
	return legalMoves(c.board)
}

func legalMoves(b *Board) []Move {
	scan := &Controller{board: b}
	var moves []Move
	for _, pc := range b.Pieces() {
		w, h := pc.Kind.Size()
		for _, d := range Directions {
			if scan.canMove(pc.Anchor, w, h, d) {
				moves = append(moves, Move{From: pc.Anchor, To: pc.Anchor.Step(d), Kind: pc.Kind, Dir: d})
			}
		}
	}
	return moves
}

// Apply performs m if the piece described by it is still in place.
// It is used to replay undo history and solver output.
func (c *Controller) Apply(m Move) (bool, error) {
	k, err := c.board.ID(m.From.Row, m.From.Col)
	if err != nil {
		return false, err
	}
	if k != m.Kind {
		return false, nil
	}
	return c.Move(m.From.Row, m.From.Col, m.Dir)
}
