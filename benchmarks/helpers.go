// Package benchmarks provides shared machine generators for benchmark tests.
package benchmarks

import (
	"strings"

	"github.com/comalice/fsmx"
)

// GenRing creates an n-state machine over {"0","1"} where "1" advances to the next
// state modulo n and "0" stays put. Every state accepts and outputs its index.
func GenRing(n int) *fsmx.Machine[int, string, int] {
	if n < 1 {
		n = 1
	}
	states := make(fsmx.Universe[int, int], n)
	table := make(fsmx.Table[int, string], 2*n)
	final := make([]int, 0, n)
	for i := 0; i < n; i++ {
		states[i] = i
		table.Set(i, "0", i)
		table.Set(i, "1", (i+1)%n)
		final = append(final, i)
	}
	return fsmx.MustNew(states, fsmx.NewSymbols("0", "1"), 0, final, table.Func())
}

// GenInput returns an alternating "10" input of the given length.
func GenInput(length int) string {
	if length < 1 {
		return ""
	}
	return strings.Repeat("10", length/2+1)[:length]
}
