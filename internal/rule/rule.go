// Package rule implements Conway's Game of Life transition for one cell.
package rule

import "golpt/internal/core"

// Apply returns the next state of a cell with the given number of live
// neighbours: two keeps the state, three makes it alive, anything else
// kills it.
func Apply(state uint8, neighbours int) uint8 {
	switch neighbours {
	case 2:
		return state
	case 3:
		return core.Alive
	default:
		return core.Dead
	}
}

// StepCell computes the next state of the interior cell at (row, col) of
// current. Counting stops once more than three neighbours are alive since
// the outcome no longer changes.
func StepCell(current *core.Board, row, col int) uint8 {
	w := current.W
	cells := current.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		base := (row+dy)*w + col
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[base+dx] != core.Dead {
				count++
				if count > 3 {
					return core.Dead
				}
			}
		}
	}
	return Apply(cells[row*w+col], count)
}
