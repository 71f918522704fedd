// Package fsmx evaluates deterministic finite state machines.
//
// A Machine is composed from five parts supplied at construction:
//  1. a Universe of states, each mapped to the output value reported on acceptance
//  2. an input Alphabet
//  3. the initial state
//  4. the set of final (accepting) states
//  5. a TransitionFunc from (state, symbol) to the successor state
//
// New checks that the initial and final states belong to the universe and nothing
// else. The transition function is allowed to be partial: a missing mapping surfaces
// as a *TransitionError on the step that needs it.
//
// # Evaluation
//
// Run consumes an iter.Seq of symbols from the initial state. Each symbol is first
// tested against the alphabet (*SymbolError), then fed to the transition function
// (*TransitionError, wrapping the cause). The first failure ends the run and no later
// symbol is pulled from the sequence, so lazy or infinite sources are safe. When the
// input is exhausted the state reached must be final (*RejectedError); otherwise the
// run returns that state's output value.
//
// Every error type matches a sentinel with errors.Is:
//
//	ErrInvalidInitialState, ErrInvalidFinalState   construction
//	ErrSymbolNotInAlphabet, ErrTransition          per symbol
//	ErrRejectedFinalState                          end of input
//
// # Concurrency
//
// A Machine never changes after New returns and runs share nothing, so a single
// Machine may be used from many goroutines provided the transition function is safe
// to call concurrently. Observers attached with WithObserver or WithLogger are called
// synchronously on the goroutine doing the run.
//
// # Usage
//
//	states := fsmx.Universe[string, bool]{"even": true, "odd": false}
//	table := fsmx.Table[string, rune]{}
//	table.Set("even", '1', "odd")
//	table.Set("odd", '1', "even")
//	table.Set("even", '0', "even")
//	table.Set("odd", '0', "odd")
//
//	m, err := fsmx.New(states, fsmx.NewSymbols('0', '1'), "even",
//		[]string{"even", "odd"}, table.Func())
//	if err != nil {
//	    return err
//	}
//	even, err := m.RunSlice('1', '0', '1')
package fsmx
