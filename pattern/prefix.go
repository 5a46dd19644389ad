// Package pattern provides string-acceptor convenience constructors built
// purely on top of the core automaton package's public interface. It adds no
// automaton algorithm of its own.
package pattern

import (
	"fmt"

	fsm "github.com/quint-t/Finite-State-Machine"
)

// Prefix builds a DFA accepting exactly the strings over alphabet that begin
// with prefix, ported from original_source/example.py:fsm_startswith. The
// construction is already minimal and deterministic: one linear chain of
// states for the prefix, collapsing into a single accepting sink with a
// self-loop on every alphabet symbol once the prefix has been matched.
// States not covered by the chain (e.g. a wrong symbol partway through the
// prefix) are simply left without an outgoing edge for that symbol, so
// Accepts rejects them without any extra bookkeeping.
func Prefix(alphabet []string, prefix []string) (*fsm.Automaton, error) {
	inAlphabet := make(map[string]bool, len(alphabet))
	for _, sym := range alphabet {
		inAlphabet[sym] = true
	}
	for _, sym := range prefix {
		if !inAlphabet[sym] {
			return nil, fmt.Errorf("pattern: prefix symbol %q is not in the alphabet", sym)
		}
	}

	a := fsm.NewDFA()
	initial := fsm.NewState(1)
	sink := fsm.NewState(len(prefix) + 1)

	for _, sym := range alphabet {
		if _, err := a.AddTransition(sink, fsm.NewSymbol(sym), sink); err != nil {
			return nil, err
		}
	}
	cur := initial
	for i, sym := range prefix {
		next := fsm.NewState(i + 2)
		if i == len(prefix)-1 {
			next = sink
		}
		if _, err := a.AddTransition(cur, fsm.NewSymbol(sym), next); err != nil {
			return nil, err
		}
		cur = next
	}
	if _, err := a.SetInitialState(initial); err != nil {
		return nil, err
	}
	if _, err := a.SetFinalState(sink); err != nil {
		return nil, err
	}
	return a, nil
}
