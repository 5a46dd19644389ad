package fsm

import "fmt"

// UIDSet marks a raw-form transition target as a nondeterministic fan-out
// of uids, as opposed to a single uid. A plain []any is accepted the same
// way for caller convenience.
type UIDSet []any

// RawTransitions is the caller-facing serialization shape spec.md §6 fixes:
// a mapping from state uid to a mapping from symbol label to either a
// single target uid or a set of target uids (UIDSet or []any).
type RawTransitions map[any]map[any]any

// FromRaw constructs an Automaton from raw uids/labels, wrapping them into
// State and Symbol values. deterministic selects a DFA-capability container;
// a raw target that is a set of size > 1 under a deterministic container is
// an error (ErrForbiddenOperation), and a set of size 1 is unwrapped to its
// single member, mirroring the determinizer's own singleton-unwrapping
// invariant (spec.md §4.3).
func FromRaw(raw RawTransitions, initial []any, final []any, deterministic bool) (*Automaton, error) {
	var a *Automaton
	if deterministic {
		a = NewDFA()
	} else {
		a = NewNFA()
	}
	for uidFrom, labelMap := range raw {
		from := NewState(uidFrom)
		a.ensureState(from)
		for label, rawTo := range labelMap {
			sym := NewSymbol(label)
			tos, isSet := rawTargets(rawTo)
			if len(tos) == 0 {
				continue
			}
			if isSet && len(tos) > 1 {
				if deterministic {
					return nil, fmt.Errorf("%w: state %v symbol %v has a multi-target edge in a DFA", ErrForbiddenOperation, from, sym)
				}
				targets := make([]State, len(tos))
				for i, t := range tos {
					targets[i] = NewState(t)
				}
				if _, err := a.AddTransitions(from, sym, targets); err != nil {
					return nil, err
				}
				continue
			}
			to := NewState(tos[0])
			if _, err := a.AddTransition(from, sym, to); err != nil {
				return nil, err
			}
		}
	}
	for _, uid := range initial {
		if _, err := a.SetInitialState(NewState(uid)); err != nil {
			return nil, err
		}
	}
	for _, uid := range final {
		if _, err := a.SetFinalState(NewState(uid)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// rawTargets normalizes a raw target value into a slice of uids plus
// whether it was supplied as a set-shaped value (UIDSet or []any) rather
// than a single scalar uid.
func rawTargets(v any) ([]any, bool) {
	switch tv := v.(type) {
	case UIDSet:
		return []any(tv), true
	case []any:
		return tv, true
	default:
		return []any{v}, false
	}
}

// ToRaw is the inverse of FromRaw: it produces exactly the raw shape
// FromRaw accepts. Single-target edges are exported as a scalar uid;
// multi-target edges are exported as a UIDSet.
func (a *Automaton) ToRaw() (RawTransitions, []any, []any) {
	raw := make(RawTransitions, len(a.states))
	for _, s := range a.states {
		labelMap := make(map[any]any)
		symEdges := a.out[s.key]
		for _, e := range symEdges {
			if len(e.targets) == 0 {
				continue
			}
			if len(e.targets) == 1 {
				for _, to := range e.targets {
					labelMap[e.symbol.Label()] = to.UID()
				}
				continue
			}
			set := make(UIDSet, 0, len(e.targets))
			for _, to := range e.targets {
				set = append(set, to.UID())
			}
			labelMap[e.symbol.Label()] = set
		}
		raw[s.UID()] = labelMap
	}
	initial := make([]any, 0, len(a.initial))
	for _, s := range a.initial {
		initial = append(initial, s.UID())
	}
	final := make([]any, 0, len(a.final))
	for _, s := range a.final {
		final = append(final, s.UID())
	}
	return raw, initial, final
}
