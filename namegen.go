package fsm

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// sortedStates returns m's values ordered by key, for deterministic
// iteration where output shape must not depend on map order.
func sortedStates(m map[string]State) []State {
	out := make([]State, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// NameGenerator supplies fresh opaque state labels. Determinize and both
// minimizers accept one to rename their (otherwise frozen-set-shaped) output
// states to short, stable-looking labels instead of leaking the internal
// subset/partition structure to callers (spec.md §4.3 "Renaming").
type NameGenerator interface {
	Next() any
}

// sequentialNames yields "1", "2", "3", ... mirroring the original source's
// count(1, 1) generator.
type sequentialNames struct {
	n int
}

// NewSequentialNameGenerator returns a NameGenerator producing successive
// decimal integers, as strings, starting at "1".
func NewSequentialNameGenerator() NameGenerator {
	return &sequentialNames{}
}

func (g *sequentialNames) Next() any {
	g.n++
	return strconv.Itoa(g.n)
}

type uuidNames struct{}

// NewUUIDNameGenerator returns a NameGenerator producing random UUID labels.
func NewUUIDNameGenerator() NameGenerator {
	return uuidNames{}
}

func (uuidNames) Next() any {
	return uuid.NewString()
}

// RenameStates returns a copy of a with every state uid replaced by a fresh
// label from gen. Initial states are renamed first (in canonical key order),
// then the remaining states, so a sequential generator produces low numbers
// for the automaton's entry points. Structure (transitions, initial/final
// membership) is preserved exactly; only uids change.
func RenameStates(a *Automaton, gen NameGenerator) *Automaton {
	if gen == nil {
		return a.Clone()
	}

	ordered := make([]State, 0, len(a.states))
	seen := make(map[string]bool, len(a.states))
	for _, s := range sortedStates(a.initial) {
		ordered = append(ordered, s)
		seen[s.key] = true
	}
	for _, s := range sortedStates(a.states) {
		if !seen[s.key] {
			ordered = append(ordered, s)
			seen[s.key] = true
		}
	}

	rename := make(map[string]State, len(ordered))
	for _, s := range ordered {
		rename[s.key] = NewState(gen.Next())
	}

	var out *Automaton
	if a.deterministic {
		out = NewDFA()
	} else {
		out = NewNFA()
	}
	for _, s := range ordered {
		out.ensureState(rename[s.key])
	}
	for k, symEdges := range a.out {
		from := rename[k]
		for _, e := range symEdges {
			for _, to := range e.targets {
				if _, err := out.AddTransition(from, e.symbol, rename[to.key]); err != nil {
					panic(err) // unreachable: renaming cannot introduce a new conflict
				}
			}
		}
	}
	for k := range a.initial {
		_, _ = out.SetInitialState(rename[k])
	}
	for k := range a.final {
		_, _ = out.SetFinalState(rename[k])
	}
	return out
}
