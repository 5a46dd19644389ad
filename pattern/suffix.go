package pattern

import (
	"fmt"

	fsm "github.com/quint-t/Finite-State-Machine"
)

// Suffix builds a DFA accepting exactly the strings over alphabet that end
// with suffix, ported from original_source/example.py:fsm_endswith. Unlike
// Prefix, the natural construction is nondeterministic (the initial state
// both stays put and starts matching the suffix on every occurrence of its
// first symbol), so this builds the NFA accumulator first and then runs it
// through Determinize and MinimizeHopcroft, exactly mirroring the original's
// DeterministicFSM.from_original(...).minimize() call.
func Suffix(alphabet []string, suffix []string) (*fsm.Automaton, error) {
	inAlphabet := make(map[string]bool, len(alphabet))
	for _, sym := range alphabet {
		inAlphabet[sym] = true
	}
	for _, sym := range suffix {
		if !inAlphabet[sym] {
			return nil, fmt.Errorf("pattern: suffix symbol %q is not in the alphabet", sym)
		}
	}

	a := fsm.NewNFA()
	initial := fsm.NewState(1)
	finalUID := len(suffix) + 1
	final := fsm.NewState(finalUID)

	for _, sym := range alphabet {
		if _, err := a.AddTransition(initial, fsm.NewSymbol(sym), initial); err != nil {
			return nil, err
		}
	}
	if len(suffix) > 0 {
		second := fsm.NewState(2)
		if finalUID == 2 {
			second = final
		}
		if _, err := a.AddTransition(initial, fsm.NewSymbol(suffix[0]), second); err != nil {
			return nil, err
		}
		cur := second
		for i, sym := range suffix[1:] {
			next := fsm.NewState(i + 3)
			if i+3 == finalUID {
				next = final
			}
			if _, err := a.AddTransition(cur, fsm.NewSymbol(sym), next); err != nil {
				return nil, err
			}
			cur = next
		}
	}
	if _, err := a.SetInitialState(initial); err != nil {
		return nil, err
	}
	if _, err := a.SetFinalState(final); err != nil {
		return nil, err
	}

	det, err := fsm.Determinize(a, nil)
	if err != nil {
		return nil, err
	}
	return fsm.MinimizeHopcroft(det, nil)
}
