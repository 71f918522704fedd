package fsmx

import "maps"

// TransitionFunc maps (state, symbol) to the successor state. It need not be total:
// returning an error for a pair is how a partial function reports a gap.
type TransitionFunc[S, A any] func(state S, symbol A) (S, error)

// Total lifts an infallible mapping into a TransitionFunc.
func Total[S, A any](fn func(state S, symbol A) S) TransitionFunc[S, A] {
	return func(state S, symbol A) (S, error) {
		return fn(state, symbol), nil
	}
}

// Key identifies one entry of a Table.
type Key[S, A comparable] struct {
	State  S
	Symbol A
}

// Table is a transition function written out as a lookup table.
type Table[S, A comparable] map[Key[S, A]]S

// Set adds or replaces the transition from state on symbol.
func (t Table[S, A]) Set(state S, symbol A, next S) {
	t[Key[S, A]{State: state, Symbol: symbol}] = next
}

// Lookup returns the successor of (state, symbol), if the table has one.
func (t Table[S, A]) Lookup(state S, symbol A) (S, bool) {
	next, ok := t[Key[S, A]{State: state, Symbol: symbol}]
	return next, ok
}

// Func returns a TransitionFunc backed by a snapshot of the table; entries set afterwards
// are not seen. Missing pairs fail with ErrNoTransition.
func (t Table[S, A]) Func() TransitionFunc[S, A] {
	t = t.Clone()
	return func(state S, symbol A) (S, error) {
		next, ok := t.Lookup(state, symbol)
		if !ok {
			return next, ErrNoTransition
		}
		return next, nil
	}
}

// Clone returns a shallow copy of the table.
func (t Table[S, A]) Clone() Table[S, A] {
	c := make(Table[S, A], len(t))
	maps.Copy(c, t)
	return c
}
