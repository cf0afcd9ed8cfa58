// Package render turns boards and frames into presentation data shared by
// the frame sinks.
package render

import (
	"fmt"

	"golpt/internal/core"
)

// BannerRows is the number of text rows a banner occupies below the board.
const BannerRows = 4

// Banner returns the text lines shown under the board for f.
func Banner(f core.Frame) []string {
	size := f.Board.Size()
	if f.Initial() {
		return []string{
			"------------------------------Board's Initial State-----------------------------",
			fmt.Sprintf("   \"Set console dimensions at least %dx%d to have a full view of the board.\"", size.W, size.H+BannerRows),
			fmt.Sprintf("\t\tRenew every %v  Hit ENTER to start play!", f.Interval),
		}
	}
	return []string{
		fmt.Sprintf("----------------------------Board's state in round: %d---------------------------", f.Generation),
	}
}

// Row renders row y of b as 'x' for live cells and ' ' for dead ones.
func Row(b *core.Board, y int) []byte {
	row := b.Row(y)
	out := make([]byte, len(row))
	for i, c := range row {
		out[i] = ' '
		if c != core.Dead {
			out[i] = 'x'
		}
	}
	return out
}
