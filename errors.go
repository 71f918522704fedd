package fsmx

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInitialState = errors.New("initial state must be in states")
	ErrInvalidFinalState   = errors.New("final states must be in states")
	ErrSymbolNotInAlphabet = errors.New("input symbol not in input alphabet")
	ErrTransition          = errors.New("transition error")
	ErrRejectedFinalState  = errors.New("final state not allowed")

	// ErrNoTransition is returned by Table.Func for a (state, symbol) pair with no entry.
	ErrNoTransition = errors.New("no transition defined")

	ErrNilAlphabet   = errors.New("input alphabet cannot be nil")
	ErrNilTransition = errors.New("transition function cannot be nil")
)

// InitialStateError reports an initial state missing from the state universe.
type InitialStateError struct {
	State any
}

func (e *InitialStateError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidInitialState, e.State)
}

func (e *InitialStateError) Is(target error) bool {
	return target == ErrInvalidInitialState
}

// FinalStateError reports a final state missing from the state universe.
type FinalStateError struct {
	State any
}

func (e *FinalStateError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidFinalState, e.State)
}

func (e *FinalStateError) Is(target error) bool {
	return target == ErrInvalidFinalState
}

// SymbolError reports an input symbol outside the machine's alphabet.
// Position is the 0-based index of the symbol in the run, or -1 for a bare Step.
type SymbolError struct {
	Symbol   any
	Position int
}

func (e *SymbolError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s: %q", ErrSymbolNotInAlphabet, fmt.Sprint(e.Symbol))
	}
	return fmt.Sprintf("%s: %q at position %d", ErrSymbolNotInAlphabet, fmt.Sprint(e.Symbol), e.Position)
}

func (e *SymbolError) Is(target error) bool {
	return target == ErrSymbolNotInAlphabet
}

// TransitionError wraps a failure of the transition function for one (state, symbol) pair.
type TransitionError struct {
	State    any
	Symbol   any
	Position int
	Err      error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition error for (%v,%v): %v", e.State, e.Symbol, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransition
}

// RejectedError reports a run that consumed all of its input and stopped in a non-final state.
type RejectedError struct {
	State    any
	Consumed int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %v after %d symbols", ErrRejectedFinalState, e.State, e.Consumed)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejectedFinalState
}

// PanicError carries the value recovered from a panicking transition function.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("transition function panicked: %v", e.Value)
}

// Unwrap returns the recovered value when it is itself an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// IsSymbolError checks if the error is a SymbolError.
func IsSymbolError(err error) bool {
	var e *SymbolError
	return errors.As(err, &e)
}

// IsTransitionError checks if the error is a TransitionError.
func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}

// IsRejectedError checks if the error is a RejectedError.
func IsRejectedError(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}
