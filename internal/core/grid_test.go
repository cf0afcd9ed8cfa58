package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {MaxCells, 2}}
	for _, c := range cases {
		if _, err := NewBoard(c[0], c[1]); !errors.Is(err, ErrAllocation) {
			t.Fatalf("NewBoard(%d, %d) err = %v, want ErrAllocation", c[0], c[1], err)
		}
	}
}

func TestBoardAccessors(t *testing.T) {
	b, err := NewBoard(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(2, 1, Alive)
	if b.At(2, 1) != Alive || b.Cells()[b.Index(2, 1)] != Alive {
		t.Fatal("Set did not store the cell")
	}
	if b.Row(1)[2] != Alive {
		t.Fatal("Row does not alias the backing slice")
	}
	if got := b.Population(); got != 1 {
		t.Fatalf("population = %d, want 1", got)
	}

	c := b.Clone()
	b.Clear()
	if c.At(2, 1) != Alive || b.Population() != 0 {
		t.Fatal("Clone shares storage with the original")
	}

	border := 0
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.OnBorder(x, y) {
				border++
			}
		}
	}
	if border != 10 {
		t.Fatalf("border cells = %d, want 10", border)
	}
}

func TestPacerSleepsInterval(t *testing.T) {
	p := NewPacer(DefaultInterval)
	var slept []int64
	p.SetSleep(func(d time.Duration) { slept = append(slept, int64(d)) })
	p.Wait()
	p.Wait()
	if p.Waits() != 2 || len(slept) != 2 || slept[0] != int64(DefaultInterval) {
		t.Fatalf("pacer waits=%d slept=%v", p.Waits(), slept)
	}

	off := NewPacer(-1)
	off.SetSleep(func(time.Duration) { t.Fatal("zero interval must not sleep") })
	off.Wait()
}
