package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	NewRNG(42).FillBinary(a)
	NewRNG(42).FillBinary(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	alive := 0
	for _, v := range a {
		if v > 1 {
			t.Fatalf("FillBinary produced %d", v)
		}
		alive += int(v)
	}
	if alive == 0 || alive == len(a) {
		t.Fatalf("fill is degenerate: %d of %d alive", alive, len(a))
	}

	NewRNG(7).FillBinary(b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different fills")
	}
}
