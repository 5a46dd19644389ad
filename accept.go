package fsm

import "fmt"

// Accepts reports whether a DFA accepts input, the sequence of symbols
// produced by wrapping each element of input as a Symbol (spec.md §4.6,
// ported from original_source/fsm_lib/example.py:fsm_check). It requires a
// deterministic automaton with exactly one initial state, since that is the
// only shape for which "the current state" after each symbol is unambiguous.
func Accepts(dfa *Automaton, input []Symbol) (bool, error) {
	if !dfa.deterministic {
		return false, fmt.Errorf("%w: Accepts requires a deterministic automaton", ErrTypeMismatch)
	}
	initial := dfa.GetInitialStates()
	if len(initial) != 1 {
		return false, fmt.Errorf("%w: Accepts requires exactly one initial state, got %d", ErrInvariantViolation, len(initial))
	}

	cur := initial[0]
	for _, sym := range input {
		targets := dfa.Targets(cur, sym)
		if len(targets) == 0 {
			return false, nil
		}
		cur = targets[0]
	}
	return dfa.IsFinal(cur), nil
}
