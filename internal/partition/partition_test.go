package partition

import (
	"errors"
	"testing"

	"golpt/internal/core"
)

func TestPartitionCoversInterior(t *testing.T) {
	for height := 3; height <= 64; height++ {
		for workers := 1; workers <= height; workers++ {
			ranges, err := Partition(height, workers)
			if err != nil {
				t.Fatalf("Partition(%d, %d): %v", height, workers, err)
			}
			if len(ranges) != workers {
				t.Fatalf("Partition(%d, %d) returned %d ranges", height, workers, len(ranges))
			}
			owners := make([]int, height)
			for _, r := range ranges {
				if r.Start > r.End {
					t.Fatalf("Partition(%d, %d): inverted range %v", height, workers, r)
				}
				for row := r.Start; row < r.End; row++ {
					owners[row]++
				}
			}
			for row, n := range owners {
				want := 1
				if row == 0 || row == height-1 {
					want = 0
				}
				if n != want {
					t.Fatalf("Partition(%d, %d): row %d covered %d times, ranges %v", height, workers, row, n, ranges)
				}
			}
		}
	}
}

func TestPartitionContiguous(t *testing.T) {
	ranges, err := Partition(25, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Range{{1, 6}, {6, 12}, {12, 18}, {18, 24}}
	for i, r := range ranges {
		if r != want[i] {
			t.Fatalf("range %d = %v, want %v", i, r, want[i])
		}
	}
	if !ranges[3].Contains(23) || ranges[3].Contains(24) {
		t.Fatal("last range must end before the bottom border")
	}
}

func TestPartitionRejectsBadInput(t *testing.T) {
	cases := []struct{ height, workers int }{
		{10, 0},
		{10, -3},
		{10, 11},
		{2, 1},
	}
	for _, c := range cases {
		if _, err := Partition(c.height, c.workers); !errors.Is(err, core.ErrConfig) {
			t.Fatalf("Partition(%d, %d) err = %v, want ErrConfig", c.height, c.workers, err)
		}
	}
}
