package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminateEpsilonTransitions_EmptyInput(t *testing.T) {
	out := NewNFA().EliminateEpsilonTransitions()
	assert.Empty(t, out.GetStates())
}

// Hand-traced scenario: δ={1:{b:2}, 2:{b:4, ε:3}, 3:{c:5, ε:1}, 4:{a:2, c:5},
// 5:{b:4, ε:3}}, I={1}, F={4}. Epsilon closures: cl(1)={1}, cl(2)={2,3,1},
// cl(3)={3,1}, cl(4)={4}, cl(5)={5,3,1}.
func TestEliminateEpsilonTransitions_Scenario(t *testing.T) {
	a := NewNFA()
	s1, s2, s3, s4, s5 := NewState(1), NewState(2), NewState(3), NewState(4), NewState(5)
	_, _ = a.AddTransition(s1, NewSymbol("b"), s2)
	_, _ = a.AddTransition(s2, NewSymbol("b"), s4)
	_, _ = a.AddTransition(s2, Epsilon, s3)
	_, _ = a.AddTransition(s3, NewSymbol("c"), s5)
	_, _ = a.AddTransition(s3, Epsilon, s1)
	_, _ = a.AddTransition(s4, NewSymbol("a"), s2)
	_, _ = a.AddTransition(s4, NewSymbol("c"), s5)
	_, _ = a.AddTransition(s5, NewSymbol("b"), s4)
	_, _ = a.AddTransition(s5, Epsilon, s3)
	_, err := a.SetInitialState(s1)
	require.NoError(t, err)
	_, err = a.SetFinalState(s4)
	require.NoError(t, err)

	out := a.EliminateEpsilonTransitions()

	for _, sym := range out.Alphabet() {
		assert.False(t, sym.IsEpsilon(), "no epsilon symbol must survive elimination")
	}

	assert.ElementsMatch(t, []State{s2}, out.Targets(s1, NewSymbol("b")))

	assert.ElementsMatch(t, []State{s4, s2}, out.Targets(s2, NewSymbol("b")))
	assert.ElementsMatch(t, []State{s5}, out.Targets(s2, NewSymbol("c")))

	assert.ElementsMatch(t, []State{s5}, out.Targets(s3, NewSymbol("c")))
	assert.ElementsMatch(t, []State{s2}, out.Targets(s3, NewSymbol("b")))

	assert.ElementsMatch(t, []State{s2}, out.Targets(s4, NewSymbol("a")))
	assert.ElementsMatch(t, []State{s5}, out.Targets(s4, NewSymbol("c")))

	assert.ElementsMatch(t, []State{s4, s2}, out.Targets(s5, NewSymbol("b")))
	assert.ElementsMatch(t, []State{s5}, out.Targets(s5, NewSymbol("c")))

	assert.ElementsMatch(t, []State{s1}, out.GetInitialStates())
	assert.ElementsMatch(t, []State{s4}, out.GetFinalStates())
}

func TestEliminateEpsilonTransitions_NeverMutatesInput(t *testing.T) {
	a := NewNFA()
	s1, s2 := NewState(1), NewState(2)
	_, _ = a.AddTransition(s1, Epsilon, s2)
	_, _ = a.SetInitialState(s1)

	_ = a.EliminateEpsilonTransitions()

	assert.ElementsMatch(t, []State{s2}, a.Targets(s1, Epsilon))
}
