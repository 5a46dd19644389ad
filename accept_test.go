package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildAcceptDFA() *Automaton {
	a := NewDFA()
	s1, s2 := NewState(1), NewState(2)
	_, _ = a.AddTransition(s1, NewSymbol("a"), s2)
	_, _ = a.AddTransition(s2, NewSymbol("a"), s1)
	_, _ = a.SetInitialState(s1)
	_, _ = a.SetFinalState(s2)
	return a
}

func TestAccepts_RejectsNFA(t *testing.T) {
	_, err := Accepts(NewNFA(), nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAccepts_RequiresExactlyOneInitialState(t *testing.T) {
	a := NewDFA()
	_, err := Accepts(a, nil)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestAccepts_WalksTransitions(t *testing.T) {
	a := buildAcceptDFA()
	sym := NewSymbol("a")

	got, err := Accepts(a, []Symbol{})
	assert.NoError(t, err)
	assert.False(t, got)

	got, err = Accepts(a, []Symbol{sym})
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = Accepts(a, []Symbol{sym, sym})
	assert.NoError(t, err)
	assert.False(t, got)
}

func TestAccepts_UndefinedTransitionRejects(t *testing.T) {
	a := buildAcceptDFA()
	got, err := Accepts(a, []Symbol{NewSymbol("unknown")})
	assert.NoError(t, err)
	assert.False(t, got)
}
