package pattern

import (
	"testing"

	fsm "github.com/quint-t/Finite-State-Machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spec.md §8 scenario 2: endswith "11" over "01", then minimize. Expected
// minimal DFA has exactly 3 states and accepts exactly strings ending "11".
func TestSuffix_EndsWith11(t *testing.T) {
	a, err := Suffix([]string{"0", "1"}, []string{"1", "1"})
	require.NoError(t, err)
	require.True(t, a.IsDeterministic())
	assert.Len(t, a.GetStates(), 3)
	assert.Len(t, a.GetFinalStates(), 1)
	assert.Len(t, a.GetInitialStates(), 1)

	for _, tc := range []struct {
		in      string
		accepts bool
	}{
		{"", false},
		{"1", false},
		{"11", true},
		{"111", true},
		{"110", false},
		{"011", true},
		{"01011", true},
		{"0101100", false},
	} {
		got, err := fsm.Accepts(a, toSymbols(splitChars(tc.in)...))
		require.NoError(t, err)
		assert.Equal(t, tc.accepts, got, "input %q", tc.in)
	}
}

func TestSuffix_EmptySuffixAcceptsEverything(t *testing.T) {
	a, err := Suffix([]string{"0", "1"}, nil)
	require.NoError(t, err)
	for _, in := range []string{"", "0", "1", "0101"} {
		got, err := fsm.Accepts(a, toSymbols(splitChars(in)...))
		require.NoError(t, err)
		assert.True(t, got, "input %q", in)
	}
}

func TestSuffix_RejectsSymbolOutsideAlphabet(t *testing.T) {
	_, err := Suffix([]string{"0", "1"}, []string{"1", "x"})
	assert.Error(t, err)
}
