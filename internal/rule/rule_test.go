package rule

import (
	"testing"

	"golpt/internal/core"
)

// neighbourhood builds a 3x3 board with the centre set to centre and the
// first n neighbours (in reading order) alive.
func neighbourhood(t *testing.T, centre uint8, n int) *core.Board {
	t.Helper()
	b, err := core.NewBoard(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 1, centre)
	placed := 0
	for y := 0; y < 3 && placed < n; y++ {
		for x := 0; x < 3 && placed < n; x++ {
			if x == 1 && y == 1 {
				continue
			}
			b.Set(x, y, core.Alive)
			placed++
		}
	}
	return b
}

func TestStepCellTable(t *testing.T) {
	for _, centre := range []uint8{core.Dead, core.Alive} {
		for n := 0; n <= 8; n++ {
			var want uint8
			switch {
			case n == 2:
				want = centre
			case n == 3:
				want = core.Alive
			default:
				want = core.Dead
			}
			b := neighbourhood(t, centre, n)
			if got := StepCell(b, 1, 1); got != want {
				t.Fatalf("centre=%d neighbours=%d: got %d, want %d", centre, n, got, want)
			}
			if got := Apply(centre, n); got != want {
				t.Fatalf("Apply(%d, %d) = %d, want %d", centre, n, got, want)
			}
		}
	}
}

func TestStepCellIgnoresCellsOutsideNeighbourhood(t *testing.T) {
	b, err := core.NewBoard(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 5; x++ {
		b.Set(x, 4, core.Alive)
	}
	b.Set(1, 2, core.Alive)
	b.Set(3, 2, core.Alive)
	if got := StepCell(b, 1, 2); got != core.Dead {
		t.Fatalf("dead cell at row 1 with two neighbours became %d", got)
	}
	if got := StepCell(b, 2, 2); got != core.Dead {
		t.Fatalf("dead centre with two neighbours became %d", got)
	}
}
