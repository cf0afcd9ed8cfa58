// Package grid owns the double-buffered board of a run.
package grid

import (
	"bufio"
	"fmt"
	"io"

	"golpt/internal/core"
	pcore "golpt/pkg/core"
)

// FillMode selects how New and Reset populate the current board.
type FillMode int

const (
	// ZeroFill clears every cell.
	ZeroFill FillMode = iota
	// RandomFill draws every cell, border included, from a seeded RNG.
	RandomFill
)

func (m FillMode) String() string {
	switch m {
	case ZeroFill:
		return "zero"
	case RandomFill:
		return "random"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// AliveByte marks a live cell in the initial-state text format.
const AliveByte = 'x'

// Store holds the current and next boards. Current is read by every worker
// during a generation and next is written by them over disjoint rows.
type Store struct {
	cur *core.Board
	nxt *core.Board
}

// New allocates both boards and fills the current one according to mode.
func New(size core.Size, mode FillMode, seed int64) (*Store, error) {
	cur, err := core.NewBoard(size.W, size.H)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewBoard(size.W, size.H)
	if err != nil {
		return nil, err
	}
	s := &Store{cur: cur, nxt: nxt}
	s.Reset(mode, seed)
	return s, nil
}

// Reset clears both boards and refills the current one.
func (s *Store) Reset(mode FillMode, seed int64) {
	s.cur.Clear()
	s.nxt.Clear()
	if mode == RandomFill {
		pcore.NewRNG(seed).FillBinary(s.cur.Cells())
	}
}

// Size returns the board dimensions.
func (s *Store) Size() core.Size { return s.cur.Size() }

// Current returns the board holding the latest published generation.
func (s *Store) Current() *core.Board { return s.cur }

// Next returns the board the running generation writes into.
func (s *Store) Next() *core.Board { return s.nxt }

// Swap exchanges the current and next boards without copying cells.
func (s *Store) Swap() { s.cur, s.nxt = s.nxt, s.cur }

// CopyBorder copies the border of the current board into the next board.
func (s *Store) CopyBorder() { CopyBorder(s.cur, s.nxt) }

// CopyBorder copies the four outer edges of src into dst. Both boards must
// share the same dimensions.
func CopyBorder(src, dst *core.Board) {
	w, h := src.W, src.H
	copy(dst.Row(0), src.Row(0))
	copy(dst.Row(h-1), src.Row(h-1))
	for y := 1; y < h-1; y++ {
		dst.Set(0, y, src.At(0, y))
		dst.Set(w-1, y, src.At(w-1, y))
	}
}

// LoadInitialState overwrites the current board with H lines read from r.
// Byte i of line j is alive when it equals 'x'. Short lines are padded with
// dead cells, long lines are truncated and lines past the last row are
// ignored. A source with fewer than H lines is rejected and the board is
// left untouched.
func (s *Store) LoadInitialState(r io.Reader) error {
	w, h := s.cur.W, s.cur.H
	staged := make([]uint8, w*h)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	row := 0
	for row < h && sc.Scan() {
		line := sc.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		dst := staged[row*w : (row+1)*w]
		for x := 0; x < w && x < len(line); x++ {
			if line[x] == AliveByte {
				dst[x] = core.Alive
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: reading initial state: %v", core.ErrMalformedInput, err)
	}
	if row < h {
		return fmt.Errorf("%w: initial state has %d rows, board needs %d", core.ErrMalformedInput, row, h)
	}
	copy(s.cur.Cells(), staged)
	return nil
}
