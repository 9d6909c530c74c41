package executor

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/conneroisu/cash/internal/value"
)

// FanOut runs n independent computations concurrently with panic safety,
// returning their results in index order or the first error encountered.
// Grounded on Tangerg-lynx/future/pool.go's PoolOfConc adapter
// (sourcegraph/conc/pool); used by the peach/pmap builtins (see
// internal/builtins/concurrent.go) to run independent list-element
// transforms in parallel without hand-rolling a WaitGroup.
func FanOut(n int, fn func(i int) (value.Value, error)) ([]value.Value, error) {
	p := pool.NewWithResults[value.Value]().WithErrors().WithFirstError().WithMaxGoroutines(n)
	for i := 0; i < n; i++ {
		i := i
		p.Go(func() (value.Value, error) {
			return fn(i)
		})
	}
	return p.Wait()
}
