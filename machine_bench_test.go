package fsmx_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/benchmarks"
)

// BenchmarkStep measures a single table-driven transition.
func BenchmarkStep(b *testing.B) {
	m := benchmarks.GenRing(3)

	for b.Loop() {
		_, _ = m.Step(1, "1")
	}
}

// BenchmarkRun measures whole runs over inputs of increasing length.
func BenchmarkRun(b *testing.B) {
	for _, n := range []int{0, 16, 256, 4096} {
		b.Run(fmt.Sprintf("len=%d", n), func(b *testing.B) {
			m := benchmarks.GenRing(7)
			input := benchmarks.GenInput(n)
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := m.Run(fsmx.Chars(input)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRunObserved measures the cost of attaching an observer.
func BenchmarkRunObserved(b *testing.B) {
	ring := benchmarks.GenRing(3)
	input := benchmarks.GenInput(64)
	states := fsmx.Universe[int, int]{0: 0, 1: 1, 2: 2}
	m := fsmx.MustNew(states, fsmx.NewSymbols("0", "1"), 0, []int{0, 1, 2}, ring.Step,
		fsmx.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	b.ReportAllocs()
	for b.Loop() {
		if _, err := m.Run(fsmx.Chars(input)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRunParallel exercises one machine from many goroutines.
func BenchmarkRunParallel(b *testing.B) {
	m := benchmarks.GenRing(5)
	input := benchmarks.GenInput(128)

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = m.Run(fsmx.Chars(input))
		}
	})
}
