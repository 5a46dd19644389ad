package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeBrzozowski_RejectsNFA(t *testing.T) {
	_, err := MinimizeBrzozowski(NewNFA(), nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMinimizeBrzozowski_EmptyAutomaton(t *testing.T) {
	out, err := MinimizeBrzozowski(NewDFA(), nil)
	require.NoError(t, err)
	assert.Empty(t, out.GetStates())
}

// Same redundant ends-with-"11" DFA as the Hopcroft test: C and D are
// behaviorally equivalent, so Brzozowski must also collapse to 3 states and
// the two minimizers must be isomorphic on the reachable part.
func TestMinimizeBrzozowski_MatchesHopcroft_EndsWith11(t *testing.T) {
	build := func() *Automaton {
		a := NewDFA()
		A, B, C, D := NewState("A"), NewState("B"), NewState("C"), NewState("D")
		zero, one := NewSymbol("0"), NewSymbol("1")
		for from, edges := range map[State][2]State{
			A: {A, B},
			B: {A, C},
			C: {A, D},
			D: {A, D},
		} {
			_, _ = a.AddTransition(from, zero, edges[0])
			_, _ = a.AddTransition(from, one, edges[1])
		}
		_, _ = a.SetInitialState(A)
		_, _ = a.SetFinalState(C)
		_, _ = a.SetFinalState(D)
		return a
	}

	hop, err := MinimizeHopcroft(build(), nil)
	require.NoError(t, err)
	brz, err := MinimizeBrzozowski(build(), nil)
	require.NoError(t, err)

	assert.Len(t, hop.GetStates(), 3)
	assert.Len(t, brz.GetStates(), 3)
	assert.True(t, isomorphicReachable(t, hop, brz))
}

// Same NFA as the determinize/Hopcroft-after-determinize scenario: both
// minimizers must agree on the reachable part after determinizing.
func TestMinimizeBrzozowski_MatchesHopcroft_AfterDeterminize(t *testing.T) {
	buildDet := func() *Automaton {
		nfa := NewNFA()
		s0, s1, s2, s3 := NewState(0), NewState(1), NewState(2), NewState(3)
		_, _ = nfa.AddTransitions(s0, NewSymbol("a"), []State{s1, s2})
		_, _ = nfa.AddTransition(s0, NewSymbol("b"), s2)
		_, _ = nfa.AddTransition(s1, NewSymbol("a"), s2)
		_, _ = nfa.AddTransition(s1, NewSymbol("b"), s3)
		_, _ = nfa.AddTransitions(s2, NewSymbol("a"), []State{s1, s2})
		_, _ = nfa.AddTransition(s2, NewSymbol("b"), s3)
		nfa.ensureState(s3)
		_, _ = nfa.SetInitialState(s0)
		_, _ = nfa.SetFinalState(s3)
		det, err := Determinize(nfa, nil)
		require.NoError(t, err)
		return det
	}

	hop, err := MinimizeHopcroft(buildDet(), nil)
	require.NoError(t, err)
	brz, err := MinimizeBrzozowski(buildDet(), nil)
	require.NoError(t, err)

	assert.Len(t, hop.GetStates(), 3)
	assert.Len(t, brz.GetStates(), 3)
	assert.True(t, isomorphicReachable(t, hop, brz))
}

// The three-state non-final cycle has no unreachable states at all, so the
// documented reachable-states divergence does not apply here: both
// minimizers must collapse it to exactly one state.
func TestMinimizeBrzozowski_EmptyFinalSetCollapses(t *testing.T) {
	build := func() *Automaton {
		a := NewDFA()
		sa, sb, sc := NewState("a"), NewState("b"), NewState("c")
		sym := NewSymbol("x")
		_, _ = a.AddTransition(sa, sym, sb)
		_, _ = a.AddTransition(sb, sym, sc)
		_, _ = a.AddTransition(sc, sym, sa)
		_, _ = a.SetInitialState(sa)
		return a
	}

	out, err := MinimizeBrzozowski(build(), nil)
	require.NoError(t, err)
	assert.Len(t, out.GetStates(), 1)
	assert.Empty(t, out.GetFinalStates())

	hop, err := MinimizeHopcroft(build(), nil)
	require.NoError(t, err)
	assert.True(t, isomorphicReachable(t, hop, out))
}

// A non-final sink unreachable from the initial state: Brzozowski's
// determinize passes only ever see states reachable from a seed, so it may
// legitimately drop it while Hopcroft retains it (spec.md §4.5's documented
// divergence). Both must still agree on the reachable behavior.
func TestMinimizeBrzozowski_MayDropUnreachableSink(t *testing.T) {
	build := func() *Automaton {
		a := NewDFA()
		s1, s2, sink := NewState(1), NewState(2), NewState("sink")
		sym := NewSymbol("x")
		_, _ = a.AddTransition(s1, sym, s2)
		_, _ = a.AddTransition(s2, sym, s1)
		_, _ = a.AddTransition(sink, sym, sink)
		_, _ = a.SetInitialState(s1)
		_, _ = a.SetFinalState(s2)
		return a
	}

	hop, err := MinimizeHopcroft(build(), nil)
	require.NoError(t, err)
	brz, err := MinimizeBrzozowski(build(), nil)
	require.NoError(t, err)

	assert.True(t, hop.HasState(NewState("sink")), "Hopcroft retains the unreachable sink")
	assert.True(t, isomorphicReachable(t, hop, brz), "both agree on the reachable part regardless")
}
