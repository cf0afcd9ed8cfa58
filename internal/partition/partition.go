// Package partition splits the interior rows of a board across workers.
package partition

import (
	"fmt"

	"golpt/internal/core"
)

// Range is a half-open interval [Start, End) of board rows.
type Range struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether row lies in the range.
func (r Range) Contains(row int) bool { return row >= r.Start && row < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Partition assigns every interior row of a board of the given height to
// exactly one of workers contiguous ranges.
//
// Each worker gets a band of height/workers rows. Worker 0 skips row 0 and
// the last worker runs up to height-1, absorbing the remainder of the
// division. Ranges near the edges may be empty when workers is close to
// height, but together they cover rows [1, height-2] with no gaps or
// overlaps.
func Partition(height, workers int) ([]Range, error) {
	if height < 3 {
		return nil, fmt.Errorf("%w: height %d leaves no interior rows", core.ErrConfig, height)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: need at least one worker, got %d", core.ErrConfig, workers)
	}
	if workers > height {
		return nil, fmt.Errorf("%w: %d workers exceed board height %d", core.ErrConfig, workers, height)
	}

	band := height / workers
	ranges := make([]Range, workers)
	for k := range ranges {
		start, end := k*band, (k+1)*band
		if k == 0 {
			start = max(1, start)
		}
		if k == workers-1 {
			end = height - 1
		}
		ranges[k] = Range{Start: start, End: end}
	}
	return ranges, nil
}
