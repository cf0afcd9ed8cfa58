package render

import (
	"image/color"
	"slices"
	"strings"
	"testing"
	"time"

	"golpt/internal/core"
)

func TestFillRGBA(t *testing.T) {
	p := NewPalette(color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := make([]byte, 8)
	p.FillRGBA(buf, []uint8{1, 0})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestBanner(t *testing.T) {
	b, err := core.NewBoard(80, 25)
	if err != nil {
		t.Fatal(err)
	}
	initial := Banner(core.Frame{Generation: 0, Board: b, Interval: 500 * time.Millisecond})
	joined := strings.Join(initial, "\n")
	for _, want := range []string{"Initial State", "80x29", "500ms", "ENTER"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("initial banner %q missing %q", joined, want)
		}
	}

	round := Banner(core.Frame{Generation: 7, Board: b})
	if len(round) != 1 || !strings.Contains(round[0], "round: 7") {
		t.Fatalf("round banner = %q", round)
	}
}

func TestRow(t *testing.T) {
	b, err := core.NewBoard(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 0, core.Alive)
	b.Set(3, 0, core.Alive)
	if got := string(Row(b, 0)); got != " x x" {
		t.Fatalf("Row = %q", got)
	}
}
