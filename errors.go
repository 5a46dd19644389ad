package fsm

import "errors"

// Error kinds signaled to callers. Mutators and transforms wrap one of these
// with context via fmt.Errorf("%w: ...").
var (
	// ErrTypeMismatch indicates an argument is not of the required semantic
	// shape (not a state, not a symbol, not a set of states).
	ErrTypeMismatch = errors.New("fsm: type mismatch")

	// ErrInvariantViolation indicates an attempt to add a deterministic edge
	// that conflicts with an existing one, or to reference a state absent
	// from Q where presence is required.
	ErrInvariantViolation = errors.New("fsm: invariant violation")

	// ErrForbiddenOperation indicates an attempt to add an epsilon edge or a
	// nondeterministic fan-out transition to a DFA container.
	ErrForbiddenOperation = errors.New("fsm: forbidden operation")
)
