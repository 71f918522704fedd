package fsmx

import (
	"iter"
	"unicode/utf8"
)

// Chars yields each character of s as a one-character string, lazily. A byte that does
// not start a valid UTF-8 sequence is yielded on its own, unchanged.
func Chars(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(s) > 0 {
			_, size := utf8.DecodeRuneInString(s)
			if !yield(s[:size]) {
				return
			}
			s = s[size:]
		}
	}
}
