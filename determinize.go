package fsm

// Determinize performs subset construction (spec.md §4.3), turning any
// automaton — nondeterministic, epsilon-bearing, or already a DFA — into an
// equivalent DFA. gen may be nil, in which case produced states keep their
// frozen-set uids (a StateSet for a genuine subset, or the original state
// itself when a subset collapses to a singleton); otherwise every produced
// state is renamed through gen.
//
// Each initial state of the input seeds its own singleton worklist item —
// initial states of a nondeterministic input are not merged into one
// combined start subset. A combined subset state is only created when
// following a symbol out of some worklist item actually fans out to more
// than one target.
func Determinize(a *Automaton, gen NameGenerator) (*Automaton, error) {
	elim := a.EliminateEpsilonTransitions()
	if len(elim.states) == 0 || len(elim.initial) == 0 {
		return NewDFA(), nil
	}

	out := NewDFA()
	seen := make(map[string]bool)
	type item struct {
		self    State
		members []State
	}
	var queue []item

	makeState := func(members []State) State {
		if len(members) == 1 {
			return members[0]
		}
		return NewState(NewStateSet(members...))
	}

	enqueue := func(members []State) State {
		s := makeState(members)
		if seen[s.key] {
			return s
		}
		seen[s.key] = true
		out.ensureState(s)
		queue = append(queue, item{self: s, members: members})
		return s
	}

	isFinal := func(members []State) bool {
		for _, m := range members {
			if _, ok := elim.final[m.key]; ok {
				return true
			}
		}
		return false
	}

	for _, init := range sortedStates(elim.initial) {
		s := enqueue([]State{init})
		if _, err := out.SetInitialState(s); err != nil {
			return nil, err
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if isFinal(cur.members) {
			if _, err := out.SetFinalState(cur.self); err != nil {
				return nil, err
			}
		}

		symbols := make(map[string]Symbol)
		targets := make(map[string]map[string]State)
		for _, m := range cur.members {
			for _, e := range elim.out[m.key] {
				symbols[e.symbol.key] = e.symbol
				set, ok := targets[e.symbol.key]
				if !ok {
					set = make(map[string]State)
					targets[e.symbol.key] = set
				}
				for tk, t := range e.targets {
					set[tk] = t
				}
			}
		}

		for symKey, sym := range symbols {
			members := sortedStates(targets[symKey])
			target := enqueue(members)
			if _, err := out.AddTransition(cur.self, sym, target); err != nil {
				return nil, err
			}
		}
	}

	if gen != nil {
		out = RenameStates(out, gen)
	}
	return out, nil
}
