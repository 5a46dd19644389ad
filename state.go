package fsm

import (
	"fmt"
	"strings"

	"github.com/cznic/strutil"
)

// State is an opaque node identity in an automaton. Its uid may be any
// value whose string form is stable (it must round-trip through fmt.Sprint
// without panicking) and, for subset-construction output, is a StateSet.
// Two States are equal iff their uids are equal under the uid's own notion
// of equality; States are ordered natively when their uids share a common
// orderable kind, falling back to string-form comparison otherwise.
type State struct {
	uid any
	key string
}

// NewState wraps uid as a State. If uid is already a State, it is returned
// unchanged rather than wrapped a second time.
func NewState(uid any) State {
	if s, ok := uid.(State); ok {
		return s
	}
	return State{uid: uid, key: canonicalKey(uid)}
}

// UID returns the value this State wraps.
func (s State) UID() any { return s.uid }

// Key returns the canonical, content-based identity key used internally for
// hashing and equality. It is exported so collaborating packages (render,
// pattern) can key their own maps consistently with the core.
func (s State) Key() string { return s.key }

// IsZero reports whether s is the zero State (no uid ever assigned).
func (s State) IsZero() bool { return s.uid == nil && s.key == "" }

// Equal reports whether s and other wrap equal uids.
func (s State) Equal(other State) bool { return s.key == other.key }

// Less orders s before other, used for deterministic iteration/printing.
func (s State) Less(other State) bool {
	if _, ok := s.uid.(StateSet); ok {
		return s.key < other.key
	}
	if _, ok := other.uid.(StateSet); ok {
		return s.key < other.key
	}
	return lessValue(s.uid, other.uid)
}

func (s State) String() string {
	return fmt.Sprintf("%v", s.uid)
}

// FormatState renders s using an indent formatter, matching the teacher's
// (cznic-fsm) debug-output idiom.
func FormatState(s State) string {
	var sb strings.Builder
	f := strutil.IndentFormatter(&sb, "\t")
	f.Format("%v", s.uid)
	return sb.String()
}
