package fsmx

// MachineBuilder provides a fluent API for assembling a Machine from its parts instead of
// passing all five to New at once. Transitions added with Transition accumulate in a
// Table; TransitionFunc replaces the table with an arbitrary function.
type MachineBuilder[S, A comparable, V any] struct {
	states   Universe[S, V]
	alphabet Alphabet[A]
	initial  S
	final    []S
	table    Table[S, A]
	fn       TransitionFunc[S, A]
	opts     []Option
}

// NewMachineBuilder creates a builder over the given state universe.
func NewMachineBuilder[S, A comparable, V any](states Universe[S, V]) *MachineBuilder[S, A, V] {
	return &MachineBuilder[S, A, V]{
		states: states,
		table:  make(Table[S, A]),
	}
}

// Alphabet sets the input alphabet.
func (b *MachineBuilder[S, A, V]) Alphabet(alphabet Alphabet[A]) *MachineBuilder[S, A, V] {
	b.alphabet = alphabet
	return b
}

// Symbols sets an enumerated input alphabet.
func (b *MachineBuilder[S, A, V]) Symbols(symbols ...A) *MachineBuilder[S, A, V] {
	b.alphabet = NewSymbols(symbols...)
	return b
}

// Initial sets the state every run starts from.
func (b *MachineBuilder[S, A, V]) Initial(s S) *MachineBuilder[S, A, V] {
	b.initial = s
	return b
}

// Final adds accepting states.
func (b *MachineBuilder[S, A, V]) Final(states ...S) *MachineBuilder[S, A, V] {
	b.final = append(b.final, states...)
	return b
}

// Transition adds a table entry from -> to on symbol. A later entry for the same
// (from, symbol) pair replaces the earlier one.
func (b *MachineBuilder[S, A, V]) Transition(from S, symbol A, to S) *MachineBuilder[S, A, V] {
	b.table.Set(from, symbol, to)
	return b
}

// TransitionFunc uses fn instead of the accumulated table.
func (b *MachineBuilder[S, A, V]) TransitionFunc(fn TransitionFunc[S, A]) *MachineBuilder[S, A, V] {
	b.fn = fn
	return b
}

// With appends construction options.
func (b *MachineBuilder[S, A, V]) With(opts ...Option) *MachineBuilder[S, A, V] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build validates the configuration and constructs the Machine.
// Without an explicit Initial the zero value of S is used, which New rejects unless it
// belongs to the universe.
func (b *MachineBuilder[S, A, V]) Build() (*Machine[S, A, V], error) {
	fn := b.fn
	if fn == nil {
		fn = b.table.Func()
	}
	return New(b.states, b.alphabet, b.initial, b.final, fn, b.opts...)
}
