// Package fsm provides a finite-state-automaton engine: an automaton
// container supporting nondeterministic transitions and epsilon edges, and
// three classical transformations over it — epsilon-closure elimination,
// subset-construction determinization, and two independently implemented
// DFA minimizers (Hopcroft partition refinement and Brzozowski double
// reversal).
//
// State identity is opaque and supplied by the caller; this package never
// invents canonical names except when an optional name generator is passed
// to Determinize/MinimizeHopcroft/MinimizeBrzozowski.
package fsm

import (
	"fmt"
	"sort"
)

// edge holds the targets reachable from one state over one symbol. A
// deterministic automaton never lets targets grow past one member.
type edge struct {
	symbol  Symbol
	targets map[string]State
}

// Automaton is the tuple (Q, Σ, δ, I, F). Σ is derived from δ, not stored.
// deterministic is a capability flag (spec.md §9, "Polymorphism": DFA is a
// restriction on the same container, not a distinct runtime type).
type Automaton struct {
	deterministic bool
	states        map[string]State
	out           map[string]map[string]*edge
	initial       map[string]State
	final         map[string]State
}

// NewNFA returns a new, empty nondeterministic automaton container.
func NewNFA() *Automaton {
	return &Automaton{
		states:  map[string]State{},
		out:     map[string]map[string]*edge{},
		initial: map[string]State{},
		final:   map[string]State{},
	}
}

// NewDFA returns a new, empty deterministic automaton container. Its
// mutators reject epsilon edges, nondeterministic fan-out, and conflicting
// deterministic edges.
func NewDFA() *Automaton {
	a := NewNFA()
	a.deterministic = true
	return a
}

// IsDeterministic reports whether a rejects epsilon edges and fan-out.
func (a *Automaton) IsDeterministic() bool { return a.deterministic }

func (a *Automaton) ensureState(s State) {
	if _, ok := a.states[s.key]; !ok {
		a.states[s.key] = s
		a.out[s.key] = map[string]*edge{}
	}
}

func (a *Automaton) getOrCreateEdge(from State, sym Symbol) *edge {
	symEdges := a.out[from.key]
	e, ok := symEdges[sym.key]
	if !ok {
		e = &edge{symbol: sym, targets: map[string]State{}}
		symEdges[sym.key] = e
	}
	return e
}

func (a *Automaton) pruneEmptyEdge(from State, sym Symbol) {
	if e, ok := a.out[from.key][sym.key]; ok && len(e.targets) == 0 {
		delete(a.out[from.key], sym.key)
	}
}

// AddTransition adds a single edge from -a-> to, creating from and to if
// absent. It is idempotent: adding an already-present edge reports no
// change. On a DFA container, sym must not be Epsilon and must not conflict
// with an existing differently-targeted edge for (from, sym).
func (a *Automaton) AddTransition(from State, sym Symbol, to State) (bool, error) {
	if a.deterministic && sym.IsEpsilon() {
		return false, fmt.Errorf("%w: epsilon transitions are forbidden in a DFA", ErrForbiddenOperation)
	}
	a.ensureState(from)
	a.ensureState(to)
	e := a.getOrCreateEdge(from, sym)
	if a.deterministic {
		if len(e.targets) > 0 {
			if _, ok := e.targets[to.key]; ok {
				return false, nil
			}
			return false, fmt.Errorf("%w: conflicting deterministic edge %v -%v-> (existing target differs)",
				ErrInvariantViolation, from, sym)
		}
		e.targets[to.key] = to
		return true, nil
	}
	if _, ok := e.targets[to.key]; ok {
		return false, nil
	}
	e.targets[to.key] = to
	return true, nil
}

// AddTransitions adds a fan-out edge from -a-> {tos...}, merging with any
// existing targets for the same symbol. NFA containers only.
func (a *Automaton) AddTransitions(from State, sym Symbol, tos []State) (bool, error) {
	if a.deterministic {
		return false, fmt.Errorf("%w: nondeterministic fan-out is forbidden in a DFA", ErrForbiddenOperation)
	}
	a.ensureState(from)
	e := a.getOrCreateEdge(from, sym)
	changed := false
	for _, to := range tos {
		a.ensureState(to)
		if _, ok := e.targets[to.key]; !ok {
			e.targets[to.key] = to
			changed = true
		}
	}
	a.pruneEmptyEdge(from, sym)
	return changed, nil
}

// SetTransition replaces (or, with replace=false, conditionally sets) the
// target of from -a-> to a single state. When replace is false and a
// non-empty target already exists, no change is made.
func (a *Automaton) SetTransition(from State, sym Symbol, to State, replace bool) (bool, error) {
	if a.deterministic && sym.IsEpsilon() {
		return false, fmt.Errorf("%w: epsilon transitions are forbidden in a DFA", ErrForbiddenOperation)
	}
	a.ensureState(from)
	a.ensureState(to)
	e := a.getOrCreateEdge(from, sym)
	if len(e.targets) > 0 && !replace {
		return false, nil
	}
	_, already := e.targets[to.key]
	changed := !already || len(e.targets) != 1
	e.targets = map[string]State{to.key: to}
	return changed, nil
}

// SetTransitions replaces (or, with replace=false, conditionally sets) the
// target set of from -a-> tos. NFA containers only.
func (a *Automaton) SetTransitions(from State, sym Symbol, tos []State, replace bool) (bool, error) {
	if a.deterministic {
		return false, fmt.Errorf("%w: nondeterministic fan-out is forbidden in a DFA", ErrForbiddenOperation)
	}
	a.ensureState(from)
	e := a.getOrCreateEdge(from, sym)
	if len(e.targets) > 0 && !replace {
		return false, nil
	}
	newTargets := map[string]State{}
	for _, to := range tos {
		a.ensureState(to)
		newTargets[to.key] = to
	}
	changed := !sameTargetSet(e.targets, newTargets)
	e.targets = newTargets
	a.pruneEmptyEdge(from, sym)
	return changed, nil
}

func sameTargetSet(a, b map[string]State) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// RemoveTransition removes a single edge from -a-> to, if present, deleting
// the (symbol -> targets) entry entirely when its target set becomes empty.
func (a *Automaton) RemoveTransition(from State, sym Symbol, to State) bool {
	symEdges, ok := a.out[from.key]
	if !ok {
		return false
	}
	e, ok := symEdges[sym.key]
	if !ok {
		return false
	}
	if _, ok := e.targets[to.key]; !ok {
		return false
	}
	delete(e.targets, to.key)
	a.pruneEmptyEdge(from, sym)
	return true
}

// RemoveTransitions removes a batch of targets from from -a-> {tos...}.
// NFA containers only.
func (a *Automaton) RemoveTransitions(from State, sym Symbol, tos []State) (bool, error) {
	if a.deterministic {
		return false, fmt.Errorf("%w: batch removal is forbidden in a DFA", ErrForbiddenOperation)
	}
	changed := false
	for _, to := range tos {
		if a.RemoveTransition(from, sym, to) {
			changed = true
		}
	}
	return changed, nil
}

// RemoveState deletes state s along with its outgoing edges and its
// membership in I and F, returning its former outgoing transitions (as
// (s, symbol, target) triples) so the caller can rewire
// them elsewhere. Returns ok=false if s was not present. Edges belonging to
// other states that targeted s are left untouched — deliberately, mirroring
// the original implementation's contract that the caller splices the
// returned edges back in.
func (a *Automaton) RemoveState(s State) (transitions []Transition, ok bool) {
	if _, ok = a.states[s.key]; !ok {
		return nil, false
	}
	symEdges := a.out[s.key]
	for _, e := range symEdges {
		transitions = append(transitions, edgeToTransitions(s, e)...)
	}
	delete(a.states, s.key)
	delete(a.out, s.key)
	delete(a.initial, s.key)
	delete(a.final, s.key)
	return transitions, true
}

// RemoveStates removes each state in states, reporting whether any existed.
func (a *Automaton) RemoveStates(states []State) bool {
	changed := false
	for _, s := range states {
		if _, ok := a.RemoveState(s); ok {
			changed = true
		}
	}
	return changed
}

// SetInitialState marks s initial. s must already be in Q.
func (a *Automaton) SetInitialState(s State) (bool, error) {
	if _, ok := a.states[s.key]; !ok {
		return false, fmt.Errorf("%w: state %v is not in the automaton", ErrInvariantViolation, s)
	}
	if _, ok := a.initial[s.key]; ok {
		return false, nil
	}
	a.initial[s.key] = s
	return true, nil
}

// SetInitialStates marks each state in states initial; all must be in Q.
func (a *Automaton) SetInitialStates(states []State) (bool, error) {
	changed := false
	for _, s := range states {
		c, err := a.SetInitialState(s)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// UnsetInitialState removes s from I, if present.
func (a *Automaton) UnsetInitialState(s State) bool {
	if _, ok := a.initial[s.key]; !ok {
		return false
	}
	delete(a.initial, s.key)
	return true
}

// SetFinalState marks s final. s must already be in Q.
func (a *Automaton) SetFinalState(s State) (bool, error) {
	if _, ok := a.states[s.key]; !ok {
		return false, fmt.Errorf("%w: state %v is not in the automaton", ErrInvariantViolation, s)
	}
	if _, ok := a.final[s.key]; ok {
		return false, nil
	}
	a.final[s.key] = s
	return true, nil
}

// SetFinalStates marks each state in states final; all must be in Q.
func (a *Automaton) SetFinalStates(states []State) (bool, error) {
	changed := false
	for _, s := range states {
		c, err := a.SetFinalState(s)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// UnsetFinalState removes s from F, if present.
func (a *Automaton) UnsetFinalState(s State) bool {
	if _, ok := a.final[s.key]; !ok {
		return false
	}
	delete(a.final, s.key)
	return true
}

// ClearInitialStates empties I.
func (a *Automaton) ClearInitialStates() bool {
	if len(a.initial) == 0 {
		return false
	}
	a.initial = map[string]State{}
	return true
}

// ClearFinalStates empties F.
func (a *Automaton) ClearFinalStates() bool {
	if len(a.final) == 0 {
		return false
	}
	a.final = map[string]State{}
	return true
}

// HasState reports whether s is in Q.
func (a *Automaton) HasState(s State) bool {
	_, ok := a.states[s.key]
	return ok
}

// HasAllStates reports whether every state in states is in Q.
func (a *Automaton) HasAllStates(states []State) bool {
	for _, s := range states {
		if !a.HasState(s) {
			return false
		}
	}
	return true
}

// HasAnyStates reports whether some state in states is in Q.
func (a *Automaton) HasAnyStates(states []State) bool {
	for _, s := range states {
		if a.HasState(s) {
			return true
		}
	}
	return false
}

// GetStates returns Q, in no particular order.
func (a *Automaton) GetStates() []State {
	out := make([]State, 0, len(a.states))
	for _, s := range a.states {
		out = append(out, s)
	}
	return out
}

// GetInitialStates returns I.
func (a *Automaton) GetInitialStates() []State {
	out := make([]State, 0, len(a.initial))
	for _, s := range a.initial {
		out = append(out, s)
	}
	return out
}

// GetFinalStates returns F.
func (a *Automaton) GetFinalStates() []State {
	out := make([]State, 0, len(a.final))
	for _, s := range a.final {
		out = append(out, s)
	}
	return out
}

// IsInitial reports whether s ∈ I.
func (a *Automaton) IsInitial(s State) bool { _, ok := a.initial[s.key]; return ok }

// IsFinal reports whether s ∈ F.
func (a *Automaton) IsFinal(s State) bool { _, ok := a.final[s.key]; return ok }

// Alphabet returns Σ: the union of symbols used anywhere in δ.
func (a *Automaton) Alphabet() []Symbol {
	seen := map[string]Symbol{}
	for _, symEdges := range a.out {
		for _, e := range symEdges {
			seen[e.symbol.key] = e.symbol
		}
	}
	out := make([]Symbol, 0, len(seen))
	for _, sym := range seen {
		out = append(out, sym)
	}
	return out
}

// Transition is one (source, symbol, target) triple, where Target is either
// a State (deterministic edge, or a singleton NFA edge) or a []State
// (nondeterministic fan-out of size > 1) — exactly the external iteration
// shape spec.md §6 fixes.
type Transition struct {
	From   State
	Symbol Symbol
	Target any // State or []State
}

func edgeToTransitions(from State, e *edge) []Transition {
	if len(e.targets) == 0 {
		return nil
	}
	if len(e.targets) == 1 {
		for _, to := range e.targets {
			return []Transition{{From: from, Symbol: e.symbol, Target: to}}
		}
	}
	set := make([]State, 0, len(e.targets))
	for _, to := range e.targets {
		set = append(set, to)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].key < set[j].key })
	return []Transition{{From: from, Symbol: e.symbol, Target: set}}
}

// Transitions returns every (source, symbol, target) triple in δ.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for _, s := range a.states {
		symEdges := a.out[s.key]
		for _, e := range symEdges {
			out = append(out, edgeToTransitions(s, e)...)
		}
	}
	return out
}

// Targets returns the current target set of from -a-> ... as states, in
// canonical order. An absent edge returns nil.
func (a *Automaton) Targets(from State, sym Symbol) []State {
	symEdges, ok := a.out[from.key]
	if !ok {
		return nil
	}
	e, ok := symEdges[sym.key]
	if !ok || len(e.targets) == 0 {
		return nil
	}
	out := make([]State, 0, len(e.targets))
	for _, to := range e.targets {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// Clone returns a deep, independently owned copy of a: transforms never
// mutate their input, and construction never shares mutable state with the
// caller (spec.md §9, "Ownership").
func (a *Automaton) Clone() *Automaton {
	out := &Automaton{
		deterministic: a.deterministic,
		states:        make(map[string]State, len(a.states)),
		out:           make(map[string]map[string]*edge, len(a.states)),
		initial:       make(map[string]State, len(a.initial)),
		final:         make(map[string]State, len(a.final)),
	}
	for k, s := range a.states {
		out.states[k] = s
		out.out[k] = map[string]*edge{}
	}
	for k, symEdges := range a.out {
		for sk, e := range symEdges {
			targets := make(map[string]State, len(e.targets))
			for tk, t := range e.targets {
				targets[tk] = t
			}
			out.out[k][sk] = &edge{symbol: e.symbol, targets: targets}
		}
	}
	for k, s := range a.initial {
		out.initial[k] = s
	}
	for k, s := range a.final {
		out.final[k] = s
	}
	return out
}

// Reverse returns A' where every edge q -a-> q' becomes q' -a-> q, and I and
// F swap. The result is always an NFA-capability container: reversing a DFA
// routinely produces states with multiple outgoing edges on the same
// symbol.
func (a *Automaton) Reverse() *Automaton {
	out := NewNFA()
	for _, s := range a.states {
		out.ensureState(s)
	}
	for _, s := range a.states {
		symEdges := a.out[s.key]
		for _, e := range symEdges {
			for _, to := range e.targets {
				_, _ = out.AddTransition(to, e.symbol, s)
			}
		}
	}
	for _, s := range a.final {
		out.initial[s.key] = s
	}
	for _, s := range a.initial {
		out.final[s.key] = s
	}
	return out
}

// Equal reports whether a and other have value-equal (δ, I, F): the
// external equality contract of spec.md §6. Automata of different capability
// (one DFA, one NFA) are never equal.
func (a *Automaton) Equal(other *Automaton) bool {
	if a.deterministic != other.deterministic {
		return false
	}
	if !sameStateSet(a.initial, other.initial) || !sameStateSet(a.final, other.final) {
		return false
	}
	if len(a.states) != len(other.states) {
		return false
	}
	for k := range a.states {
		if _, ok := other.states[k]; !ok {
			return false
		}
	}
	for k, symEdges := range a.out {
		otherSymEdges, ok := other.out[k]
		if !ok {
			if len(symEdges) != 0 {
				return false
			}
			continue
		}
		if len(symEdges) != len(otherSymEdges) {
			return false
		}
		for sk, e := range symEdges {
			oe, ok := otherSymEdges[sk]
			if !ok || !sameTargetSet(e.targets, oe.targets) {
				return false
			}
		}
	}
	return true
}

func sameStateSet(a, b map[string]State) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// String renders a in the teacher's (cznic-fsm) debug idiom: states sorted,
// initial/final annotated, one line per edge.
func (a *Automaton) String() string {
	states := a.GetStates()
	sort.Slice(states, func(i, j int) bool { return states[i].Less(states[j]) })
	var out string
	for _, s := range states {
		marker := ""
		if a.IsInitial(s) {
			marker += " [initial]"
		}
		if a.IsFinal(s) {
			marker += " [final]"
		}
		out += fmt.Sprintf("%s%s:\n", s, marker)
		symEdges := a.out[s.key]
		syms := make([]Symbol, 0, len(symEdges))
		for _, e := range symEdges {
			syms = append(syms, e.symbol)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i].Less(syms[j]) })
		for _, sym := range syms {
			out += fmt.Sprintf("\t%s -> %v\n", sym, a.Targets(s, sym))
		}
	}
	return out
}
