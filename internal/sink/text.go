// Package sink renders frames to terminals and reads the start signal.
package sink

import (
	"bufio"
	"io"

	"golpt/internal/core"
	"golpt/internal/render"
)

const clearScreen = "\x1b[H\x1b[2J"

// Text writes each frame as rows of 'x' and ' ' followed by its banner.
type Text struct {
	w     *bufio.Writer
	clear bool
}

// NewText returns a Text sink writing to w. When clear is set the terminal
// is cleared before every frame.
func NewText(w io.Writer, clear bool) *Text {
	return &Text{w: bufio.NewWriter(w), clear: clear}
}

// Frame implements core.Sink.
func (t *Text) Frame(f core.Frame) error {
	if t.clear {
		t.w.WriteString(clearScreen)
	}
	for y := 0; y < f.Board.H; y++ {
		t.w.Write(render.Row(f.Board, y))
		t.w.WriteByte('\n')
	}
	for _, line := range render.Banner(f) {
		t.w.WriteString(line)
		t.w.WriteByte('\n')
	}
	return t.w.Flush()
}
