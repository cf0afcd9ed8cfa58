package engine

import (
	"fmt"
	"testing"

	"golpt/internal/core"
	"golpt/internal/grid"
)

func benchmarkRun(b *testing.B, size, generations int) {
	discard := core.SinkFunc(func(core.Frame) error { return nil })
	for threads := 1; threads <= 16; threads *= 2 {
		name := fmt.Sprintf("%dx%dx%d-%d", size, size, generations, threads)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s, err := grid.New(core.Size{W: size, H: size}, grid.RandomFill, int64(i))
				if err != nil {
					b.Fatal(err)
				}
				e, err := New(s, discard, Options{Workers: threads, Generations: generations})
				if err != nil {
					b.Fatal(err)
				}
				if _, err := e.Run(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_128_1000(b *testing.B) { benchmarkRun(b, 128, 1000) }

func Benchmark_512_100(b *testing.B) { benchmarkRun(b, 512, 100) }
