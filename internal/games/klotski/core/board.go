package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyLayout  = errors.New("klotski: layout has no cells")
	ErrRaggedLayout = errors.New("klotski: layout rows differ in width")
	ErrUnknownKind  = errors.New("klotski: unknown occupancy code")
	ErrBrokenPiece  = errors.New("klotski: piece footprint is incomplete")
	ErrOutOfBounds  = errors.New("klotski: position out of bounds")
	ErrNotAnchor    = errors.New("klotski: cell is not a piece anchor")
)

// Board owns the occupancy grid. It remembers the layout it was created
// from so a game can be restarted.
type Board struct {
	width    int
	height   int
	cells    [][]Kind
	original [][]Kind
}

// NewBoard creates a board from a row-major layout.
// The layout is copied; later changes to the argument do not leak in.
func NewBoard(layout [][]Kind) (*Board, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	width := len(layout[0])
	for r, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedLayout, r, len(row), width)
		}
		for c, k := range row {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %d at %s", ErrUnknownKind, k, P(r, c))
			}
		}
	}

	b := &Board{
		width:    width,
		height:   len(layout),
		cells:    copyGrid(layout),
		original: copyGrid(layout),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseLayout builds a layout from rows of kind characters, e.g. "3443".
func ParseLayout(rows []string) ([][]Kind, error) {
	layout := make([][]Kind, len(rows))
	for r, line := range rows {
		line = strings.TrimSpace(line)
		layout[r] = make([]Kind, 0, len(line))
		for _, ch := range line {
			if ch == ' ' {
				continue
			}
			k, err := ParseKind(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			layout[r] = append(layout[r], k)
		}
	}
	return layout, nil
}

// MustParse builds a board from layout rows and panics on error.
// Intended for tests and built-in fixtures.
func MustParse(rows ...string) *Board {
	layout, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	b, err := NewBoard(layout)
	if err != nil {
		panic(err)
	}
	return b
}

func copyGrid(src [][]Kind) [][]Kind {
	dst := make([][]Kind, len(src))
	for r := range src {
		dst[r] = make([]Kind, len(src[r]))
		copy(dst[r], src[r])
	}
	return dst
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Reset restores the layout the board was created with.
func (b *Board) Reset() {
	b.cells = copyGrid(b.original)
}

// Matrix returns a copy of the current grid.
func (b *Board) Matrix() [][]Kind {
	return copyGrid(b.cells)
}

// InBounds reports whether p is a cell of the grid.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// RegionInBounds reports whether a w x h region anchored at p fits the grid.
func (b *Board) RegionInBounds(p Pos, w, h int) bool {
	return w > 0 && h > 0 &&
		p.Row >= 0 && p.Row+h <= b.height &&
		p.Col >= 0 && p.Col+w <= b.width
}

// ID returns the occupancy code at (row, col).
func (b *Board) ID(row, col int) (Kind, error) {
	p := P(row, col)
	if !b.InBounds(p) {
		return Empty, fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, b.height, b.width)
	}
	return b.cells[row][col], nil
}

// At returns the occupancy code at p, or Empty outside the grid.
func (b *Board) At(p Pos) Kind {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[p.Row][p.Col]
}

// SetRegion stamps kind k over the w x h region anchored at p.
// Nothing is written unless the whole region is inside the grid.
func (b *Board) SetRegion(p Pos, w, h int, k Kind) error {
	if !b.RegionInBounds(p, w, h) {
		return fmt.Errorf("%w: %dx%d region at %s", ErrOutOfBounds, w, h, p)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	for r := p.Row; r < p.Row+h; r++ {
		for c := p.Col; c < p.Col+w; c++ {
			b.cells[r][c] = k
		}
	}
	return nil
}

// ClearRegion empties the w x h region anchored at p.
func (b *Board) ClearRegion(p Pos, w, h int) error {
	return b.SetRegion(p, w, h, Empty)
}

// Pieces lists the pieces on the board in row-major order of their anchors.
// Each unclaimed non-empty cell starts a piece whose footprint follows its kind.
func (b *Board) Pieces() []Piece {
	pieces, _ := b.scan()
	return pieces
}

// PieceAt returns the piece covering cell p.
func (b *Board) PieceAt(p Pos) (Piece, bool) {
	if b.At(p) == Empty {
		return Piece{}, false
	}
	for _, pc := range b.Pieces() {
		if pc.Contains(p) {
			return pc, true
		}
	}
	return Piece{}, false
}

// Validate checks that every non-empty cell belongs to exactly one complete
// rectangular piece of its kind.
func (b *Board) Validate() error {
	_, err := b.scan()
	return err
}

func (b *Board) scan() ([]Piece, error) {
	claimed := make([][]bool, b.height)
	for r := range claimed {
		claimed[r] = make([]bool, b.width)
	}

	var (
		pieces   []Piece
		firstErr error
	)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			k := b.cells[r][c]
			if k == Empty || claimed[r][c] {
				continue
			}

			pc := Piece{Anchor: P(r, c), Kind: k}
			pieces = append(pieces, pc)

			for _, cell := range pc.Cells() {
				if !b.InBounds(cell) || b.cells[cell.Row][cell.Col] != k || claimed[cell.Row][cell.Col] {
					if firstErr == nil {
						firstErr = fmt.Errorf("%w: %s piece at %s", ErrBrokenPiece, k, pc.Anchor)
					}
					continue
				}
				claimed[cell.Row][cell.Col] = true
			}
		}
	}
	return pieces, firstErr
}

// Clone returns a deep copy, including the original layout.
func (b *Board) Clone() *Board {
	return &Board{
		width:    b.width,
		height:   b.height,
		cells:    copyGrid(b.cells),
		original: copyGrid(b.original),
	}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Key returns a compact encoding of the current cells.
// Boards of equal size have equal keys exactly when Equal is true.
func (b *Board) Key() string {
	buf := make([]byte, 0, b.width*b.height)
	for _, row := range b.cells {
		for _, k := range row {
			buf = append(buf, byte('0'+k))
		}
	}
	return string(buf)
}

// loadKey overwrites the cells with a Key of the same board size.
func (b *Board) loadKey(key string) {
	i := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Kind(key[i] - '0')
			i++
		}
	}
}

// String renders the grid as layout rows separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteRune(k.Rune())
		}
	}
	return sb.String()
}
