package fsmx

// Universe is the closed set of states a machine may occupy, each mapped to the
// output value reported when a run accepts in that state.
type Universe[S comparable, V any] map[S]V

// Contains reports whether s is one of the universe's states.
func (u Universe[S, V]) Contains(s S) bool {
	_, ok := u[s]
	return ok
}

// Output returns the output value associated with s.
func (u Universe[S, V]) Output(s S) (V, bool) {
	v, ok := u[s]
	return v, ok
}

func (u Universe[S, V]) Len() int {
	return len(u)
}
