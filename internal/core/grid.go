package core

import "fmt"

// Cell values stored in a Board.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// MaxCells bounds the number of cells a single Board may hold.
const MaxCells = 1 << 26

// Board stores a 2D grid of binary cells in row-major order.
type Board struct {
	W, H int
	data []uint8
}

// NewBoard allocates a zeroed board with the given dimensions.
func NewBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: board dimensions %dx%d must be positive", ErrAllocation, w, h)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: board %dx%d exceeds %d cells", ErrAllocation, w, h, MaxCells)
	}
	return &Board{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Size reports the board dimensions.
func (b *Board) Size() Size { return Size{W: b.W, H: b.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// At returns the cell at column x, row y.
func (b *Board) At(x, y int) uint8 { return b.data[y*b.W+x] }

// Set stores v at column x, row y.
func (b *Board) Set(x, y int, v uint8) { b.data[y*b.W+x] = v }

// Row returns the slice backing row y.
func (b *Board) Row(y int) []uint8 { return b.data[y*b.W : (y+1)*b.W] }

// OnBorder reports whether (x, y) lies on the outermost ring of the board.
func (b *Board) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == b.W-1 || y == b.H-1
}

// Population counts the live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.data {
		if c != Dead {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{W: b.W, H: b.H, data: append([]uint8(nil), b.data...)}
}

// Clear fills the board with dead cells.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = Dead
	}
}
