package fsmx

import "maps"

// Alphabet is the set of valid input symbols. Contains must accept any candidate,
// including values that are not members.
type Alphabet[A any] interface {
	Contains(symbol A) bool
}

// Symbols is an enumerated alphabet.
type Symbols[A comparable] map[A]struct{}

// NewSymbols builds an alphabet from the listed symbols. Duplicates collapse.
func NewSymbols[A comparable](symbols ...A) Symbols[A] {
	s := make(Symbols[A], len(symbols))
	for _, sym := range symbols {
		s[sym] = struct{}{}
	}
	return s
}

func (s Symbols[A]) Contains(symbol A) bool {
	_, ok := s[symbol]
	return ok
}

func (s Symbols[A]) cloneAlphabet() Alphabet[A] {
	return maps.Clone(s)
}

// AlphabetFunc adapts a membership predicate, for alphabets that are cheaper to test than to list.
// The predicate must be pure: a Machine calls it from every run and never copies what it reads.
type AlphabetFunc[A any] func(symbol A) bool

func (f AlphabetFunc[A]) Contains(symbol A) bool {
	return f(symbol)
}
