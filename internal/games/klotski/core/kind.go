// Package core holds the Klotski board model, move controller and solver.
// It depends on nothing outside the standard library so the rules can be
// tested without a terminal.
package core

import "fmt"

// Kind is the occupancy code stored in every grid cell.
// The zero value is an empty cell; the others name a piece size class.
type Kind uint8

const (
	Empty      Kind = iota // no piece
	Single                 // 1x1
	Horizontal             // 2 wide, 1 tall
	Vertical               // 1 wide, 2 tall
	Big                    // 2x2
)

// Size returns the footprint width and height for the kind.
// Codes outside the known set fall back to 1x1.
func (k Kind) Size() (width, height int) {
	switch k {
	case Horizontal:
		return 2, 1
	case Vertical:
		return 1, 2
	case Big:
		return 2, 2
	default:
		return 1, 1
	}
}

// Valid reports whether k is one of the known codes, Empty included.
func (k Kind) Valid() bool {
	return k <= Big
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Single:
		return "single"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Rune returns the single-character layout code for k.
func (k Kind) Rune() rune {
	if k == Empty {
		return '.'
	}
	return rune('0' + k)
}

// ParseKind converts a layout character into a Kind.
// Both '0' and '.' denote an empty cell.
func ParseKind(r rune) (Kind, error) {
	switch {
	case r == '.':
		return Empty, nil
	case r >= '0' && r <= '4':
		return Kind(r - '0'), nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownKind, r)
	}
}

// Pos is a grid coordinate. Row grows downward, Col grows to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Add returns p offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring position in direction d.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the unit (row, col) offset of the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection accepts the direction names and their first letters.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "u", "U":
		return Up, nil
	case "down", "d", "D":
		return Down, nil
	case "left", "l", "L":
		return Left, nil
	case "right", "r", "R":
		return Right, nil
	default:
		return Up, fmt.Errorf("unknown direction %q", s)
	}
}

// Piece is a logical block inferred from the grid: an anchor (its top-left
// cell) and the kind stamped over its footprint.
type Piece struct {
	Anchor Pos
	Kind   Kind
}

// Width returns the footprint width.
func (p Piece) Width() int {
	w, _ := p.Kind.Size()
	return w
}

// Height returns the footprint height.
func (p Piece) Height() int {
	_, h := p.Kind.Size()
	return h
}

// Contains reports whether cell c is part of the piece's footprint.
func (p Piece) Contains(c Pos) bool {
	return c.Row >= p.Anchor.Row && c.Row < p.Anchor.Row+p.Height() &&
		c.Col >= p.Anchor.Col && c.Col < p.Anchor.Col+p.Width()
}

// Cells returns every cell of the footprint in row-major order.
func (p Piece) Cells() []Pos {
	w, h := p.Kind.Size()
	cells := make([]Pos, 0, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cells = append(cells, p.Anchor.Add(r, c))
		}
	}
	return cells
}

// Move records one successful single-cell slide.
type Move struct {
	From Pos
	To   Pos
	Kind Kind
	Dir  Direction
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{From: m.To, To: m.From, Kind: m.Kind, Dir: m.Dir.Opposite()}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s %s", m.Kind, m.From, m.Dir)
}
