// Package environment implements cash's lexically-scoped Context chain:
// a singly-linked chain of scopes with a $NAME process-env escape hatch,
// a walk-up-and-mutate Set used by closures, and a shared executor
// handle propagated down the chain for async jobs.
//
// The locking discipline (short read, release before recursing into the
// parent) avoids holding a lock across the whole chain walk, which would
// deadlock a concurrent writer higher up the chain; it is grounded on the
// original interpreter's Context (backend/src/context.rs), which takes
// and releases a RwLock per hop the same way.
package environment

import (
	"os"
	"sync"

	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// Executor is the subset of executor behavior a Context needs to expose
// to async expressions, kept as an interface here so environment never
// imports internal/executor (which itself depends on value, not the
// other way around).
type Executor interface {
	RegisterJob(job func() (value.Value, error)) value.Awaitable
}

// Registry resolves built-in function names; looked up only after the
// whole scope chain misses.
type Registry interface {
	Lookup(name string) (value.Value, bool)
}

// Context is one node of the scope chain.
type Context struct {
	mu       sync.RWMutex
	parent   *Context
	vars     map[string]value.Value
	executor Executor
	registry Registry
}

// Root creates the bottom-most scope with a fresh executor and registry.
func Root(executor Executor, registry Registry) *Context {
	return &Context{
		vars:     make(map[string]value.Value),
		executor: executor,
		registry: registry,
	}
}

// FromParent creates a child scope sharing the parent's executor and registry.
func FromParent(parent *Context) *Context {
	return &Context{
		vars:     make(map[string]value.Value),
		parent:   parent,
		executor: parent.executor,
		registry: parent.registry,
	}
}

// Extend implements value.Environment, letting ast/builtins code treat
// Context uniformly through the value package's narrow interface.
func (c *Context) Extend() value.Environment { return FromParent(c) }

// Executor returns the shared executor handle for posting async jobs.
func (c *Context) Executor() Executor { return c.executor }

// Get looks up name in order: $NAME env bridge, then local scope, then
// parent, then the builtin registry.
func (c *Context) Get(name string) (value.Value, bool) {
	if len(name) > 0 && name[0] == '$' {
		v, ok := os.LookupEnv(name[1:])
		if !ok {
			return nil, false
		}
		return value.String(v), true
	}

	c.mu.RLock()
	v, ok := c.vars[name]
	parent := c.parent
	c.mu.RUnlock()

	if ok {
		return v.Clone(), true
	}
	if parent != nil {
		return parent.Get(name)
	}
	if c.registry != nil {
		return c.registry.Lookup(name)
	}
	return nil, false
}

// Set walks up to the deepest scope that already binds name and mutates
// it there, or binds fresh in the current scope if none does — the
// semantics closures rely on to mutate state captured from an enclosing
// scope.
func (c *Context) Set(name string, v value.Value) {
	if len(name) > 0 && name[0] == '$' {
		os.Setenv(name[1:], value.Stringify(v))
		return
	}
	if owner := c.findOwner(name); owner != nil {
		owner.SetSelf(name, v)
		return
	}
	c.SetSelf(name, v)
}

// findOwner walks the chain looking for the deepest scope that already
// binds name, releasing each lock before recursing to the parent.
func (c *Context) findOwner(name string) *Context {
	c.mu.RLock()
	_, ok := c.vars[name]
	parent := c.parent
	c.mu.RUnlock()

	if ok {
		return c
	}
	if parent != nil {
		return parent.findOwner(name)
	}
	return nil
}

// SetSelf always binds in the current scope, used for loop variables and
// function parameters.
func (c *Context) SetSelf(name string, v value.Value) {
	c.mu.Lock()
	c.vars[name] = v.Clone()
	c.mu.Unlock()
}

// Exists mirrors Get's search order, returning only presence.
func (c *Context) Exists(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// MustGet wraps Get with the typed error a failed lookup should surface,
// used by assignment's compound-operator path (e.g. "x += 1" needs x's
// current value before it can compute the new one).
func (c *Context) MustGet(name string) (value.Value, error) {
	v, ok := c.Get(name)
	if !ok {
		return nil, errs.NewVariableNotFound(name)
	}
	return v, nil
}
