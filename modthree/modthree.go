// Package modthree computes the remainder of a binary number divided by three with a
// three-state fsmx machine. Each state is the remainder of the prefix read so far.
package modthree

import (
	"fmt"
	"maps"

	"github.com/comalice/fsmx"
)

// Remainder is a state of the mod-three machine.
type Remainder int

const (
	S0 Remainder = iota
	S1
	S2
)

func (r Remainder) String() string {
	switch r {
	case S0, S1, S2:
		return fmt.Sprintf("S%d", int(r))
	default:
		return fmt.Sprintf("Remainder(%d)", int(r))
	}
}

var (
	states   = fsmx.Universe[Remainder, int]{S0: 0, S1: 1, S2: 2}
	alphabet = fsmx.NewSymbols("0", "1")
)

// Reading digit d in state r moves to (2r + d) mod 3.
var transitions = fsmx.Table[Remainder, string]{
	{State: S0, Symbol: "0"}: S0,
	{State: S0, Symbol: "1"}: S1,
	{State: S1, Symbol: "0"}: S2,
	{State: S1, Symbol: "1"}: S0,
	{State: S2, Symbol: "0"}: S1,
	{State: S2, Symbol: "1"}: S2,
}

// Machine is the shared mod-three evaluator. It is safe for concurrent use.
var Machine = New()

// New builds a mod-three machine with the given options.
func New(opts ...fsmx.Option) *fsmx.Machine[Remainder, string, int] {
	return fsmx.MustNew(states, alphabet, S0, []Remainder{S0, S1, S2}, transitions.Func(),
		append([]fsmx.Option{fsmx.WithName("mod-three")}, opts...)...)
}

// States returns a copy of the state universe, each remainder mapped to its output.
func States() fsmx.Universe[Remainder, int] {
	return maps.Clone(states)
}

// Alphabet returns a copy of the binary digit alphabet.
func Alphabet() fsmx.Symbols[string] {
	return maps.Clone(alphabet)
}

// Table returns a copy of the transition table.
func Table() fsmx.Table[Remainder, string] {
	return transitions.Clone()
}

// Mod returns the binary number written in input modulo three. The empty string is 0.
// Characters other than '0' and '1' fail with fsmx.ErrSymbolNotInAlphabet.
func Mod(input string) (int, error) {
	return Machine.Run(fsmx.Chars(input))
}
