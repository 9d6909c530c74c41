package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqCrossKindIsFalseNotError(t *testing.T) {
	require.False(t, Eq(Int(1), String("1")))
	require.False(t, Eq(Bool(true), Int(1)))
}

func TestEqIntFloatCoercion(t *testing.T) {
	require.True(t, Eq(Int(2), Float(2.0)))
	require.True(t, Eq(Float(2.0), Int(2)))
}

func TestEqListDeep(t *testing.T) {
	a := NewList(Int(1), NewList(Int(2), Int(3)))
	b := NewList(Int(1), NewList(Int(2), Int(3)))
	require.True(t, Eq(a, b))

	c := NewList(Int(1), NewList(Int(2), Int(4)))
	require.False(t, Eq(a, c))
}

func TestNewRangeRejectsEmptyOrInverted(t *testing.T) {
	_, err := NewRange(5, 5)
	require.Error(t, err)

	_, err = NewRange(5, 1)
	require.Error(t, err)

	r, err := NewRange(1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 4, r.Len())
}

func TestListCloneIsDeep(t *testing.T) {
	inner := NewList(Int(1))
	outer := NewList(inner)

	clone := outer.Clone().(*List)
	clone.Elems[0].(*List).Elems[0] = Int(99)

	require.Equal(t, Int(1), outer.Elems[0].(*List).Elems[0])
}

func TestDictSetClonesAndPreservesOrder(t *testing.T) {
	d := NewDict()
	l := NewList(Int(1))
	d.Set("b", Int(2))
	d.Set("a", l)

	l.Elems[0] = Int(42)
	stored, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, Int(1), stored.(*List).Elems[0])

	require.Equal(t, []string{"b", "a"}, d.Keys())
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set("x", Int(1))
	require.True(t, d.Delete("x"))
	require.False(t, d.Delete("x"))
	_, ok := d.Get("x")
	require.False(t, ok)
}

func TestSentinelUnwrap(t *testing.T) {
	inner := Int(7)
	brk := &Break{Inner: inner}

	unwrapped, ok := Sentinel(brk)
	require.True(t, ok)
	require.Equal(t, inner, unwrapped)

	_, ok = Sentinel(Int(3))
	require.False(t, ok)

	require.Equal(t, Value(Int(3)), Unwrap(Int(3)))
	require.Equal(t, inner, Unwrap(brk))
}

func TestStringifyUsesRawStringNotQuoted(t *testing.T) {
	require.Equal(t, "hi", Stringify(String("hi")))
	require.Equal(t, "3", Stringify(Int(3)))
}
