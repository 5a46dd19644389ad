package fsm

import (
	"sort"
	"strings"
)

// StateSet is the uid payload produced by subset construction: a frozen,
// unordered set of member states, hashed/compared by its own stable
// content-based key rather than by recursing into member identities from
// the outside (spec.md §9, "Subset-of-subset uids").
type StateSet struct {
	members []State
	k       string
}

// NewStateSet builds a StateSet from states, deduplicating and canonicalizing
// member order so two StateSets built from the same members in any order
// compare and hash identically.
func NewStateSet(states ...State) StateSet {
	seen := make(map[string]State, len(states))
	for _, s := range states {
		seen[s.key] = s
	}
	members := make([]State, 0, len(seen))
	for _, s := range seen {
		members = append(members, s)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].key < members[j].key })
	parts := make([]string, len(members))
	for i, s := range members {
		parts[i] = s.key
	}
	return StateSet{members: members, k: "{" + strings.Join(parts, ",") + "}"}
}

func (ss StateSet) key() string { return ss.k }

// Members returns the set's member states in canonical order.
func (ss StateSet) Members() []State {
	out := make([]State, len(ss.members))
	copy(out, ss.members)
	return out
}

// Len returns the number of member states.
func (ss StateSet) Len() int { return len(ss.members) }

// Contains reports whether s is a member of ss.
func (ss StateSet) Contains(s State) bool {
	for _, m := range ss.members {
		if m.key == s.key {
			return true
		}
	}
	return false
}

func (ss StateSet) String() string {
	parts := make([]string, len(ss.members))
	for i, s := range ss.members {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
