package idl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeDeclare(t *testing.T) {
	s := newScope()
	a := &Interface{Identifier: Identifier{Name: "A"}}
	pa := &Interface{Identifier: Identifier{Name: "A"}, Partial: true, Members: []Member{
		&Attribute{Identifier: Identifier{Name: "y", Scope: "A"}},
	}}
	x1 := &ExternalInterface{Identifier: Identifier{Name: "X"}}
	x2 := &ExternalInterface{Identifier: Identifier{Name: "X"}}
	inc := &Includes{Interface: "A", Mixin: "M"}

	require.NoError(t, s.declare(pa, true))
	require.NoError(t, s.declare(x1, false))
	require.NoError(t, s.declare(x2, false))
	require.NoError(t, s.declare(inc, false))
	require.NoError(t, s.declare(a, false))

	d, ok := s.resolve("X")
	require.True(t, ok)
	require.Same(t, x1, d)

	err := s.declare(&Dictionary{Identifier: Identifier{Name: "A"}}, false)
	requireKind(t, NameCollisionError, err)
	err = s.declare(&Dictionary{Identifier: Identifier{Name: "A"}, Partial: true}, true)
	requireKind(t, NameCollisionError, err)

	defs, err := s.merge(MergePartialAttributes)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	require.Same(t, a, defs[0])
	require.Same(t, x1, defs[1])
	require.Same(t, inc, defs[2])
	require.Equal(t, []string{"y"}, memberNames(a.Members))
}

func TestScopeMergeWithoutBase(t *testing.T) {
	s := newScope()
	require.NoError(t, s.declare(&Dictionary{Identifier: Identifier{Name: "D"}, Partial: true}, true))
	_, err := s.merge(MergePartialAttributes)
	requireKind(t, UnresolvedIdentifierError, err)
}
