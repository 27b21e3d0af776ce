package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyScope(t *testing.T) {
	var scope *Scope
	_, ok := scope.Lookup("x")
	require.False(t, ok)
	require.False(t, scope.IsDefined("x"))
	require.Nil(t, scope.Names())
	require.Equal(t, 0, scope.Len())
}

func TestScopeIsPersistent(t *testing.T) {
	outer := (*Scope)(nil).With("a", 1)
	inner := outer.With("b", 2)

	require.True(t, inner.IsDefined("a"))
	require.True(t, inner.IsDefined("b"))
	require.True(t, outer.IsDefined("a"))
	require.False(t, outer.IsDefined("b"))

	binding, ok := inner.Lookup("b")
	require.True(t, ok)
	require.Equal(t, Binding{Type: TypeInt, Register: 2}, binding)
}

func TestScopeShadowing(t *testing.T) {
	outer := (*Scope)(nil).With("x", 1).With("y", 2)
	inner := outer.With("x", 5)

	binding, ok := inner.Lookup("x")
	require.True(t, ok)
	require.Equal(t, uint8(5), binding.Register)

	binding, ok = outer.Lookup("x")
	require.True(t, ok)
	require.Equal(t, uint8(1), binding.Register)

	require.Equal(t, []string{"x", "y"}, inner.Names())
	require.Equal(t, 2, inner.Len())
}
