package fsmx

import (
	"iter"
	"maps"
	"slices"
)

// Machine is a validated deterministic finite state machine. It is immutable after
// New returns and holds no per-run state, so one Machine may serve concurrent callers
// as long as its transition function does.
type Machine[S comparable, A any, V any] struct {
	states     Universe[S, V]
	alphabet   Alphabet[A]
	initial    S
	final      map[S]struct{}
	transition TransitionFunc[S, A]

	name      string
	observers []Observer
}

// New validates the machine definition and returns an evaluator for it.
//
// The initial state is checked first, then every final state in slice order; the
// first offender is reported. The transition function is not checked for totality:
// gaps surface per step as *TransitionError.
//
// The universe and final states are copied, as is the alphabet when it is Symbols,
// so later changes to the arguments do not reach the Machine.
func New[S comparable, A any, V any](
	states Universe[S, V],
	alphabet Alphabet[A],
	initial S,
	final []S,
	transition TransitionFunc[S, A],
	opts ...Option,
) (*Machine[S, A, V], error) {
	if !states.Contains(initial) {
		return nil, &InitialStateError{State: initial}
	}
	finalSet := make(map[S]struct{}, len(final))
	for _, s := range final {
		if !states.Contains(s) {
			return nil, &FinalStateError{State: s}
		}
		finalSet[s] = struct{}{}
	}
	if alphabet == nil {
		return nil, ErrNilAlphabet
	}
	if transition == nil {
		return nil, ErrNilTransition
	}

	if c, ok := alphabet.(interface{ cloneAlphabet() Alphabet[A] }); ok {
		alphabet = c.cloneAlphabet()
	}

	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Machine[S, A, V]{
		states:     maps.Clone(states),
		alphabet:   alphabet,
		initial:    initial,
		final:      finalSet,
		transition: transition,
		name:       cfg.name,
		observers:  cfg.observers,
	}, nil
}

// MustNew is like New but panics if the definition is invalid.
func MustNew[S comparable, A any, V any](
	states Universe[S, V],
	alphabet Alphabet[A],
	initial S,
	final []S,
	transition TransitionFunc[S, A],
	opts ...Option,
) *Machine[S, A, V] {
	m, err := New(states, alphabet, initial, final, transition, opts...)
	if err != nil {
		panic("fsmx: invalid machine: " + err.Error())
	}
	return m
}

// Name returns the name set with WithName, or "".
func (m *Machine[S, A, V]) Name() string {
	return m.name
}

// Initial returns the state every run starts from.
func (m *Machine[S, A, V]) Initial() S {
	return m.initial
}

// IsFinal reports whether s is an accepting state.
func (m *Machine[S, A, V]) IsFinal(s S) bool {
	_, ok := m.final[s]
	return ok
}

// Step performs one transition from state on symbol.
func (m *Machine[S, A, V]) Step(state S, symbol A) (S, error) {
	return m.step(state, symbol, -1)
}

// Run consumes symbols in order from the initial state and returns the output value
// of the accepting state reached. The first failing symbol stops the run; symbols
// after it are never pulled from the sequence. A nil sequence is an empty input.
func (m *Machine[S, A, V]) Run(symbols iter.Seq[A]) (V, error) {
	state, err := m.run(symbols)
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := m.states.Output(state)
	return v, nil
}

// RunSlice is Run over a fixed list of symbols.
func (m *Machine[S, A, V]) RunSlice(symbols ...A) (V, error) {
	return m.Run(slices.Values(symbols))
}

// Terminal is Run but returns the accepting state itself rather than its output.
func (m *Machine[S, A, V]) Terminal(symbols iter.Seq[A]) (S, error) {
	state, err := m.run(symbols)
	if err != nil {
		var zero S
		return zero, err
	}
	return state, nil
}

// Accepts reports whether the machine accepts the input.
func (m *Machine[S, A, V]) Accepts(symbols iter.Seq[A]) bool {
	_, err := m.run(symbols)
	return err == nil
}

func (m *Machine[S, A, V]) run(symbols iter.Seq[A]) (S, error) {
	tr := m.trace()
	state := m.initial
	if tr != nil {
		tr.emit(Event{Kind: RunStarted, State: state, Position: -1})
	}

	pos := 0
	if symbols != nil {
		for symbol := range symbols {
			next, err := m.step(state, symbol, pos)
			if err != nil {
				if tr != nil {
					tr.emit(Event{Kind: Failed, State: state, Symbol: symbol, Position: pos, Err: err})
				}
				return state, err
			}
			state = next
			if tr != nil {
				tr.emit(Event{Kind: Stepped, State: state, Symbol: symbol, Position: pos})
			}
			pos++
		}
	}

	if !m.IsFinal(state) {
		err := &RejectedError{State: state, Consumed: pos}
		if tr != nil {
			tr.emit(Event{Kind: Failed, State: state, Position: pos, Err: err})
		}
		return state, err
	}
	if tr != nil {
		out, _ := m.states.Output(state)
		tr.emit(Event{Kind: Accepted, State: state, Position: pos, Output: out})
	}
	return state, nil
}

func (m *Machine[S, A, V]) step(state S, symbol A, pos int) (S, error) {
	if !m.alphabet.Contains(symbol) {
		return state, &SymbolError{Symbol: symbol, Position: pos}
	}
	next, err := m.apply(state, symbol)
	if err != nil {
		return state, &TransitionError{State: state, Symbol: symbol, Position: pos, Err: err}
	}
	return next, nil
}

// apply calls the transition function, converting a panic into a *PanicError.
func (m *Machine[S, A, V]) apply(state S, symbol A) (next S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return m.transition(state, symbol)
}
