package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet_OrderIndependentKey(t *testing.T) {
	a := NewStateSet(NewState(1), NewState(2), NewState(3))
	b := NewStateSet(NewState(3), NewState(1), NewState(2))
	assert.Equal(t, a.key(), b.key())
	assert.Equal(t, a.String(), b.String())
}

func TestStateSet_Dedupes(t *testing.T) {
	a := NewStateSet(NewState(1), NewState(1), NewState(2))
	assert.Equal(t, 2, a.Len())
}

func TestStateSet_Contains(t *testing.T) {
	a := NewStateSet(NewState(1), NewState(2))
	assert.True(t, a.Contains(NewState(1)))
	assert.False(t, a.Contains(NewState(3)))
}

func TestStateSet_AsStateUID(t *testing.T) {
	ss1 := NewStateSet(NewState(1), NewState(2))
	ss2 := NewStateSet(NewState(2), NewState(1))
	s1 := NewState(ss1)
	s2 := NewState(ss2)
	assert.True(t, s1.Equal(s2))
}
