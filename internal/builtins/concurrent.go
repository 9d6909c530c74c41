package builtins

import (
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/executor"
	"github.com/conneroisu/cash/internal/value"
)

// registerConcurrent adds peach/pmap, the parallel counterparts of
// each/map that fan out independent iterations across goroutines via
// executor.FanOut (sourcegraph/conc), rather than posting to the shared
// worker pool — list-element transforms are typically short-lived and
// independent, exactly the shape conc/pool's panic-safe WaitGroup wrapper
// targets (see Tangerg-lynx/future/pool.go's PoolOfConc).
func registerConcurrent(r *Registry) {
	r.register("pmap", biPMap)
	r.register("peach", biPEach)
}

func biPMap(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	elems, idxs, err := elementsOf(args[0])
	if err != nil {
		return nil, err
	}
	results, err := executor.FanOut(len(elems), func(i int) (value.Value, error) {
		return callFn(args[1], []value.Value{elems[i], idxs[i]}, env)
	})
	if err != nil {
		return nil, err
	}
	return &value.List{Elems: results}, nil
}

func biPEach(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	elems, idxs, err := elementsOf(args[0])
	if err != nil {
		return nil, err
	}
	_, err = executor.FanOut(len(elems), func(i int) (value.Value, error) {
		return callFn(args[1], []value.Value{elems[i], idxs[i]}, env)
	})
	if err != nil {
		return nil, err
	}
	return value.None{}, nil
}
