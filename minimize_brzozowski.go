package fsm

import "fmt"

// MinimizeBrzozowski minimizes a DFA via double reversal (spec.md §4.5):
// d(r(d(r(A)))), where r is Reverse and d is Determinize. It is an
// independent implementation of the same contract as MinimizeHopcroft, used
// primarily to cross-check it; on inputs with non-final states unreachable
// from any initial state it may produce a smaller result, since each
// determinize pass only keeps states reachable from its seed.
func MinimizeBrzozowski(a *Automaton, gen NameGenerator) (*Automaton, error) {
	if !a.deterministic {
		return nil, fmt.Errorf("%w: MinimizeBrzozowski requires a deterministic automaton", ErrTypeMismatch)
	}
	if len(a.states) == 0 {
		return NewDFA(), nil
	}

	step1, err := determinizeKeepingReachability(a.Reverse(), nil)
	if err != nil {
		return nil, err
	}
	step2, err := determinizeKeepingReachability(step1.Reverse(), gen)
	if err != nil {
		return nil, err
	}
	return step2, nil
}

// determinizeKeepingReachability runs Determinize directly when a has
// exactly one initial state. Otherwise it first attaches a temporary fictive
// initial state with a real fan-out transition into every initial state of
// a, or, when a has no initial states (possible after reversing an
// automaton with an empty final set), into every one of a's states, so the
// determinizer's subset construction starts from a single combined seed
// instead of one seed per initial state (or "empty I -> empty DFA"
// swallowing the rest of a's structure). The fictive state is then
// discarded from the result; when a had several initial states, the
// combined seed subset becomes the result's only initial state (spec.md
// §4.5, "a fictive initial state is temporarily added", mirroring
// original_source/fsm_lib/dfsm.py:_brzozowski's final_states_empty branch,
// which likewise routes every state through the stand-in before
// determinizing rather than leaving it disconnected).
func determinizeKeepingReachability(a *Automaton, gen NameGenerator) (*Automaton, error) {
	initial := a.GetInitialStates()
	if len(initial) == 1 {
		return Determinize(a, gen)
	}

	fictive := NewState(&fictiveStateMarker{})
	fictiveSym := NewSymbol(&fictiveSymbolMarker{})
	tmp := a.Clone()
	seeds := initial
	if len(seeds) == 0 {
		seeds = tmp.GetStates()
	}
	tmp.ClearInitialStates()
	tmp.ensureState(fictive)
	for _, s := range seeds {
		if s.Equal(fictive) {
			continue
		}
		if _, err := tmp.AddTransition(fictive, fictiveSym, s); err != nil {
			return nil, err
		}
	}
	if _, err := tmp.SetInitialState(fictive); err != nil {
		return nil, err
	}

	out, err := Determinize(tmp, nil)
	if err != nil {
		return nil, err
	}
	start := out.Targets(fictive, fictiveSym)
	out.RemoveState(fictive)
	if len(initial) > 1 {
		_, _ = out.SetInitialState(start[0])
	}

	if gen != nil {
		out = RenameStates(out, gen)
	}
	return out, nil
}
