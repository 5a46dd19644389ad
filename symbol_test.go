package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol_Epsilon(t *testing.T) {
	assert.True(t, Epsilon.IsEpsilon())
	assert.False(t, NewSymbol("a").IsEpsilon())
	assert.Equal(t, "ε", Epsilon.String())
}

func TestSymbol_NewSymbolNilIsEpsilon(t *testing.T) {
	assert.True(t, NewSymbol(nil).IsEpsilon())
}

func TestSymbol_EqualByContent(t *testing.T) {
	a := NewSymbol("x")
	b := NewSymbol("x")
	c := NewSymbol("y")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSymbol_EpsilonOrdersFirst(t *testing.T) {
	assert.True(t, Epsilon.Less(NewSymbol("a")))
	assert.False(t, NewSymbol("a").Less(Epsilon))
}

func TestSymbol_WrapsSymbolIdempotently(t *testing.T) {
	a := NewSymbol("x")
	b := NewSymbol(a)
	assert.Equal(t, a, b)
}
