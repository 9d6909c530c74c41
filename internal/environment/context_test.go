package environment

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/cash/internal/value"
)

type stubExecutor struct{}

func (stubExecutor) RegisterJob(job func() (value.Value, error)) value.Awaitable { return nil }

type stubRegistry struct{ fns map[string]value.Value }

func (r stubRegistry) Lookup(name string) (value.Value, bool) {
	v, ok := r.fns[name]
	return v, ok
}

func newTestRoot() *Context {
	return Root(stubExecutor{}, stubRegistry{fns: map[string]value.Value{
		"len": value.Int(-1),
	}})
}

func TestGetFallsThroughToParentThenRegistry(t *testing.T) {
	root := newTestRoot()
	root.SetSelf("x", value.Int(1))

	child := FromParent(root)
	v, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, value.Int(1), v)

	_, ok = child.Get("nope")
	require.False(t, ok)

	v, ok = child.Get("len")
	require.True(t, ok)
	require.Equal(t, value.Int(-1), v)
}

func TestSetMutatesDeepestExistingBinding(t *testing.T) {
	root := newTestRoot()
	root.SetSelf("x", value.Int(1))

	child := FromParent(root)
	child.Set("x", value.Int(99))

	v, _ := root.Get("x")
	require.Equal(t, value.Int(99), v, "Set must walk up and mutate the owning scope")

	_, ok := child.vars["x"]
	require.False(t, ok, "child scope must not get its own binding for x")
}

func TestSetBindsFreshInCurrentScopeWhenNoOwnerExists(t *testing.T) {
	root := newTestRoot()
	child := FromParent(root)
	child.Set("y", value.Int(5))

	_, ok := root.Get("y")
	require.False(t, ok, "y must not leak into the parent scope")

	v, ok := child.Get("y")
	require.True(t, ok)
	require.Equal(t, value.Int(5), v)
}

func TestGetClonesStoredValue(t *testing.T) {
	root := newTestRoot()
	l := value.NewList(value.Int(1))
	root.SetSelf("l", l)

	got, _ := root.Get("l")
	got.(*value.List).Elems[0] = value.Int(99)

	again, _ := root.Get("l")
	require.Equal(t, value.Int(1), again.(*value.List).Elems[0])
}

func TestDollarNameBridgesProcessEnv(t *testing.T) {
	root := newTestRoot()
	require.NoError(t, os.Setenv("CASH_TEST_VAR", "hello"))
	defer os.Unsetenv("CASH_TEST_VAR")

	v, ok := root.Get("$CASH_TEST_VAR")
	require.True(t, ok)
	require.Equal(t, value.String("hello"), v)

	root.Set("$CASH_TEST_VAR", value.String("changed"))
	require.Equal(t, "changed", os.Getenv("CASH_TEST_VAR"))
}

func TestMustGetReturnsTypedErrorWhenMissing(t *testing.T) {
	root := newTestRoot()
	_, err := root.MustGet("missing")
	require.Error(t, err)
}

func TestExtendReturnsUsableEnvironment(t *testing.T) {
	root := newTestRoot()
	root.SetSelf("x", value.Int(1))

	ext := root.Extend()
	child, ok := ext.(*Context)
	require.True(t, ok)

	v, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, value.Int(1), v)
}
