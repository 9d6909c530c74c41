package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStringConcatenatesAnyRHS(t *testing.T) {
	v, err := Add(String("n="), Int(5))
	require.NoError(t, err)
	require.Equal(t, String("n=5"), v)
}

func TestAddRangeShiftsByInt(t *testing.T) {
	r, _ := NewRange(1, 5)
	v, err := Add(r, Int(2))
	require.NoError(t, err)
	got := v.(*Range)
	require.EqualValues(t, 3, got.Lower)
	require.EqualValues(t, 7, got.Upper)
}

func TestAddListAppends(t *testing.T) {
	l := NewList(Int(1), Int(2))
	v, err := Add(l, Int(3))
	require.NoError(t, err)
	result := v.(*List)
	require.Len(t, result.Elems, 3)
	require.Len(t, l.Elems, 2, "Add must not mutate the original list")
}

func TestSubStringRemovesSubstring(t *testing.T) {
	v, err := Sub(String("hello world"), String("o"))
	require.NoError(t, err)
	require.Equal(t, String("hell wrld"), v)
}

func TestDivAlwaysYieldsFloatForInts(t *testing.T) {
	v, err := Div(Int(4), Int(2))
	require.NoError(t, err)
	_, ok := v.(Float)
	require.True(t, ok, "int/int must yield a float, got %T", v)
	require.Equal(t, Float(2.0), v)
}

func TestPowIntNonNegativeStaysInt(t *testing.T) {
	v, err := Pow(Int(2), Int(10))
	require.NoError(t, err)
	require.Equal(t, Int(1024), v)
}

func TestPowIntNegativeExponentYieldsFloat(t *testing.T) {
	v, err := Pow(Int(2), Int(-1))
	require.NoError(t, err)
	_, ok := v.(Float)
	require.True(t, ok)
	require.InDelta(t, 0.5, float64(v.(Float)), 1e-9)
}

func TestUMinusRangeShiftsAndFlipsEndpoints(t *testing.T) {
	r, _ := NewRange(1, 5)
	v, err := UMinus(r)
	require.NoError(t, err)
	got := v.(*Range)
	require.EqualValues(t, -5, got.Lower)
	require.EqualValues(t, -1, got.Upper)
	require.Equal(t, r.Len(), got.Len())
}

func TestBitAndDispatchesOnBoolVsInt(t *testing.T) {
	v, err := BitAnd(Bool(true), Bool(false))
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)

	v, err = BitAnd(Int(6), Int(3))
	require.NoError(t, err)
	require.Equal(t, Int(2), v)
}

func TestInRangeMembership(t *testing.T) {
	r, _ := NewRange(1, 5)
	v, err := In(Int(3), r)
	require.NoError(t, err)
	require.Equal(t, Bool(true), v)

	v, err = In(Int(5), r)
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)
}

func TestIndexNegativeWrapsFromEnd(t *testing.T) {
	l := NewList(Int(1), Int(2), Int(3))
	v, err := Index(l, Int(-1))
	require.NoError(t, err)
	require.Equal(t, Int(3), v)
}

func TestIndexOutOfBoundsErrors(t *testing.T) {
	l := NewList(Int(1))
	_, err := Index(l, Int(5))
	require.Error(t, err)
}

func TestIndexStringSliceByRange(t *testing.T) {
	s := String("hello")
	r, _ := NewRange(1, 4)
	v, err := Index(s, r)
	require.NoError(t, err)
	require.Equal(t, String("ell"), v)
}

func TestIndexSetBroadcastsOverRange(t *testing.T) {
	l := NewList(Int(0), Int(0), Int(0), Int(0))
	r, _ := NewRange(1, 3)
	err := IndexSet(l, r, Int(9))
	require.NoError(t, err)
	require.Equal(t, []Value{Int(0), Int(9), Int(9), Int(0)}, l.Elems)
}

func TestIndexSetDictOnRangeKeyErrors(t *testing.T) {
	d := NewDict()
	r, _ := NewRange(1, 3)
	err := IndexSet(d, r, Int(1))
	require.Error(t, err)
}

func TestVecProjectsEachKind(t *testing.T) {
	r, _ := NewRange(3, 6)
	elems, err := Vec(r)
	require.NoError(t, err)
	require.Equal(t, []Value{Int(3), Int(4), Int(5)}, elems)

	elems, err = Vec(String("ab"))
	require.NoError(t, err)
	require.Equal(t, []Value{String("a"), String("b")}, elems)

	d := NewDict()
	d.Set("k", Int(1))
	elems, err = Vec(d)
	require.NoError(t, err)
	require.Equal(t, []Value{String("k")}, elems)
}

func TestDivByZeroRangeErrors(t *testing.T) {
	r, _ := NewRange(1, 5)
	_, err := Div(r, Int(0))
	require.Error(t, err)
}

func TestModByZeroErrors(t *testing.T) {
	_, err := Mod(Int(4), Int(0))
	require.Error(t, err)
}

func TestLessEqAndGreaterEqAreDerivedFromLess(t *testing.T) {
	v, err := LessEq(Int(3), Int(3))
	require.NoError(t, err)
	require.Equal(t, Bool(true), v)

	v, err = GreaterEq(Int(2), Int(3))
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)
}
