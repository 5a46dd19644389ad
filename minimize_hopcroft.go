package fsm

import "fmt"

// fictiveStateMarker and fictiveSymbolMarker back the synthetic state and
// symbol MinimizeHopcroft adds to its working copy of the automaton so
// partition refinement can distinguish initial states uniformly (spec.md
// §4.4, "Total-function augmentation"). Both types are unexported, and a
// marker's canonical key names its type, so it can never collide with a uid
// or label supplied from outside this package.
type fictiveStateMarker struct{}
type fictiveSymbolMarker struct{}

type invKey struct {
	sym    string
	target string
}

// MinimizeHopcroft minimizes a DFA by partition refinement over an inverse
// transition relation (spec.md §4.4). Unlike MinimizeBrzozowski, it operates
// over the whole state set rather than only the part reachable from I, so
// non-final states unreachable from any initial state survive minimization
// (each in the block of the states it cannot be distinguished from).
func MinimizeHopcroft(a *Automaton, gen NameGenerator) (*Automaton, error) {
	if !a.deterministic {
		return nil, fmt.Errorf("%w: MinimizeHopcroft requires a deterministic automaton", ErrTypeMismatch)
	}
	if len(a.states) == 0 {
		return NewDFA(), nil
	}

	fictive := NewState(&fictiveStateMarker{})
	fictiveSym := NewSymbol(&fictiveSymbolMarker{})
	alphabet := append(a.Alphabet(), fictiveSym)

	inv := make(map[invKey]map[string]struct{})
	addInv := func(sym Symbol, from, to State) {
		k := invKey{sym.key, to.key}
		set, ok := inv[k]
		if !ok {
			set = make(map[string]struct{})
			inv[k] = set
		}
		set[from.key] = struct{}{}
	}
	for k, symEdges := range a.out {
		from := a.states[k]
		for _, e := range symEdges {
			for _, to := range e.targets {
				addInv(e.symbol, from, to)
			}
		}
	}
	for _, s := range a.initial {
		addInv(fictiveSym, fictive, s)
	}

	nextID := 0
	blocks := make(map[int]map[string]State)
	keyToBlock := make(map[string]int)
	newBlock := func(members map[string]State) int {
		id := nextID
		nextID++
		blocks[id] = members
		for k := range members {
			keyToBlock[k] = id
		}
		return id
	}

	fBlock := make(map[string]State)
	for k, s := range a.final {
		fBlock[k] = s
	}
	rest := make(map[string]State)
	for k, s := range a.states {
		if _, ok := a.final[k]; !ok {
			rest[k] = s
		}
	}
	fictiveBlockID := newBlock(map[string]State{fictive.key: fictive})

	var worklist []int
	inWorklist := make(map[int]bool)
	push := func(id int) {
		worklist = append(worklist, id)
		inWorklist[id] = true
	}
	push(fictiveBlockID)
	if len(fBlock) > 0 {
		push(newBlock(fBlock))
	}
	if len(rest) > 0 {
		push(newBlock(rest))
	}

	for len(worklist) > 0 {
		cID := worklist[0]
		worklist = worklist[1:]
		inWorklist[cID] = false
		C, ok := blocks[cID]
		if !ok {
			continue
		}

		for _, sym := range alphabet {
			X := make(map[string]struct{})
			for ck := range C {
				if set, ok := inv[invKey{sym.key, ck}]; ok {
					for fk := range set {
						X[fk] = struct{}{}
					}
				}
			}
			if len(X) == 0 {
				continue
			}

			snapshot := make(map[int]map[string]State, len(blocks))
			for id, members := range blocks {
				snapshot[id] = members
			}

			for yID, Y := range snapshot {
				inter := make(map[string]State)
				diff := make(map[string]State)
				for k, s := range Y {
					if _, in := X[k]; in {
						inter[k] = s
					} else {
						diff[k] = s
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				delete(blocks, yID)
				wasInWorklist := inWorklist[yID]
				delete(inWorklist, yID)
				if wasInWorklist {
					for i, w := range worklist {
						if w == yID {
							worklist = append(worklist[:i], worklist[i+1:]...)
							break
						}
					}
				}

				id1 := newBlock(inter)
				id2 := newBlock(diff)
				if wasInWorklist {
					push(id1)
					push(id2)
				} else if len(inter) <= len(diff) {
					push(id1)
				} else {
					push(id2)
				}
			}
		}
	}

	out := NewDFA()
	blockState := make(map[int]State, len(blocks))
	for id, members := range blocks {
		if id == fictiveBlockID {
			continue
		}
		members2 := make([]State, 0, len(members))
		for _, s := range sortedStates(members) {
			members2 = append(members2, s)
		}
		var s State
		if len(members2) == 1 {
			s = members2[0]
		} else {
			s = NewState(NewStateSet(members2...))
		}
		blockState[id] = s
		out.ensureState(s)
	}

	for id, members := range blocks {
		if id == fictiveBlockID {
			continue
		}
		s := blockState[id]
		for k := range members {
			if _, isInit := a.initial[k]; isInit {
				if _, err := out.SetInitialState(s); err != nil {
					return nil, err
				}
				break
			}
		}
		for k := range members {
			if _, isFinal := a.final[k]; isFinal {
				if _, err := out.SetFinalState(s); err != nil {
					return nil, err
				}
				break
			}
		}

		rep := sortedStates(members)[0]
		for _, e := range a.out[rep.key] {
			for _, to := range e.targets {
				toState := blockState[keyToBlock[to.key]]
				if _, err := out.AddTransition(s, e.symbol, toState); err != nil {
					return nil, err
				}
			}
		}
	}

	if gen != nil {
		out = RenameStates(out, gen)
	}
	return out, nil
}
