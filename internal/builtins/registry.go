// Package builtins implements the cash builtin registry:
// print, type, exists, len, map/each/filter/reduce, push/pop/insert/
// remove, join, cd/cwd, plus concurrent peach/pmap variants. The
// registry is immutable after construction and requires no locking,
// matching the teacher's registerBuiltins()-populated map
// pattern (conneroisu-gix/pkg/eval/builtins.go), generalized from
// arity-checked single-purpose closures to cash's argument/context
// calling convention.
package builtins

import (
	"github.com/conneroisu/cash/internal/value"
)

// Registry is an immutable name → builtin-function table implementing
// environment.Registry, the last step an identifier lookup falls
// through to after the context chain and the $NAME env bridge.
type Registry struct {
	fns map[string]*value.Builtin
}

// New builds the standard registry.
func New() *Registry {
	r := &Registry{fns: make(map[string]*value.Builtin)}
	registerCore(r)
	registerCollections(r)
	registerProcess(r)
	registerConcurrent(r)
	return r
}

// Lookup implements environment.Registry.
func (r *Registry) Lookup(name string) (value.Value, bool) {
	b, ok := r.fns[name]
	if !ok {
		return nil, false
	}
	return b, true
}

func (r *Registry) register(name string, fn func([]value.Value, value.Environment) (value.Value, error)) {
	r.fns[name] = value.NewBuiltin(name, fn)
}
