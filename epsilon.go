package fsm

// EliminateEpsilonTransitions rewrites a possibly-epsilon-containing
// automaton into an equivalent one without epsilon transitions
// (spec.md §4.2). It never mutates a; the result is a freshly owned NFA
// container (it may still be nondeterministic on non-epsilon symbols).
//
// Algorithm: compute each state's epsilon closure (itself plus every state
// reachable through zero or more Epsilon edges) to a fixed point, then for
// every state fold in the non-epsilon out-edges of every other state in its
// closure. A state becomes final if its closure intersects the original F;
// if a state was initial, its entire closure becomes initial too.
func (a *Automaton) EliminateEpsilonTransitions() *Automaton {
	if len(a.states) == 0 || len(a.initial) == 0 {
		return NewNFA()
	}

	closure := make(map[string]map[string]State, len(a.states))
	for k, s := range a.states {
		m := map[string]State{k: s}
		if symEdges, ok := a.out[k]; ok {
			if e, ok := symEdges[Epsilon.key]; ok {
				for tk, t := range e.targets {
					m[tk] = t
				}
			}
		}
		closure[k] = m
	}

	for changed := true; changed; {
		changed = false
		for k, m := range closure {
			for mk := range m {
				if mk == k {
					continue
				}
				for ik, iv := range closure[mk] {
					if _, ok := m[ik]; !ok {
						m[ik] = iv
						changed = true
					}
				}
			}
		}
	}

	out := NewNFA()
	for _, s := range a.states {
		out.ensureState(s)
	}
	for k, s := range a.states {
		for _, e := range a.out[k] {
			if e.symbol.IsEpsilon() {
				continue
			}
			for _, to := range e.targets {
				if _, err := out.AddTransition(s, e.symbol, to); err != nil {
					panic(err) // unreachable: out is always an NFA container
				}
			}
		}
		for mk := range closure[k] {
			if mk == k {
				continue
			}
			for _, e := range a.out[mk] {
				if e.symbol.IsEpsilon() {
					continue
				}
				for _, to := range e.targets {
					if _, err := out.AddTransition(s, e.symbol, to); err != nil {
						panic(err)
					}
				}
			}
		}
	}

	for k, s := range a.states {
		for mk := range closure[k] {
			if _, ok := a.final[mk]; ok {
				_, _ = out.SetFinalState(s)
				break
			}
		}
	}
	for k, s := range a.initial {
		_, _ = out.SetInitialState(s)
		for mk, m := range closure[k] {
			if mk == k {
				continue
			}
			_, _ = out.SetInitialState(m)
		}
	}
	return out
}
