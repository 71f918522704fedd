package fsmx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
)

func TestMachineBuilder(t *testing.T) {
	t.Parallel()

	t.Run("table transitions", func(t *testing.T) {
		t.Parallel()
		m, err := fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("a", "b").
			Initial(stateA).
			Final(stateB).
			Transition(stateA, "a", stateB).
			Transition(stateB, "b", stateA).
			Transition(stateB, "a", stateB).
			With(fsmx.WithName("ab")).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "ab", m.Name())

		got, err := m.RunSlice("a", "b", "a", "a")
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		_, err = m.RunSlice("b")
		assert.ErrorIs(t, err, fsmx.ErrNoTransition)
	})

	t.Run("later transition replaces earlier", func(t *testing.T) {
		t.Parallel()
		m, err := fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("x").
			Initial(stateA).
			Final(stateA, stateB).
			Transition(stateA, "x", stateB).
			Transition(stateA, "x", stateA).
			Build()
		require.NoError(t, err)

		s, err := m.Terminal(fsmx.Chars("x"))
		require.NoError(t, err)
		assert.Equal(t, stateA, s)
	})

	t.Run("transition func overrides table", func(t *testing.T) {
		t.Parallel()
		m, err := fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("x").
			Initial(stateA).
			Final(stateB).
			Transition(stateA, "x", stateA).
			TransitionFunc(alwaysTo(stateB)).
			Build()
		require.NoError(t, err)

		got, err := m.RunSlice("x")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("validation errors surface from Build", func(t *testing.T) {
		t.Parallel()
		_, err := fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("x").
			Initial(stateOther).
			Build()
		assert.ErrorIs(t, err, fsmx.ErrInvalidInitialState)

		_, err = fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("x").
			Initial(stateA).
			Final(stateOther).
			Build()
		assert.ErrorIs(t, err, fsmx.ErrInvalidFinalState)

		_, err = fsmx.NewMachineBuilder[testState, string](testStates).
			Initial(stateA).
			Build()
		assert.ErrorIs(t, err, fsmx.ErrNilAlphabet)
	})

	t.Run("built machine is isolated from later builder edits", func(t *testing.T) {
		t.Parallel()
		b := fsmx.NewMachineBuilder[testState, string](testStates).
			Symbols("x").
			Initial(stateA).
			Final(stateB).
			Transition(stateA, "x", stateB)
		m, err := b.Build()
		require.NoError(t, err)

		b.Transition(stateA, "x", stateA)

		assert.True(t, m.Accepts(fsmx.Chars("x")))
	})
}
