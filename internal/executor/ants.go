package executor

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/conneroisu/cash/internal/value"
)

// AntsExecutor is an interchangeable Executor implementation backed by
// panjf2000/ants instead of gammazero/workerpool, grounded on
// Tangerg-lynx/future/pool.go's PoolOfAnts adapter: the teacher's own
// "unified interface over interchangeable pools" pattern. It is
// selected by passing --pool ants on the command line (see
// executor.NewBackend and cmd/cash's pool flag) rather than being the
// default, since ants favors goroutine reuse over workerpool's
// channel-dispatch model under very high job churn.
type AntsExecutor struct {
	pool *ants.Pool

	mu      sync.Mutex
	cond    *sync.Cond
	counter uint64
	results map[uint64]jobResult

	log *slog.Logger
}

// NewAntsExecutor creates an AntsExecutor sized to the available
// hardware parallelism.
func NewAntsExecutor(log *slog.Logger) (*AntsExecutor, error) {
	if log == nil {
		log = slog.Default()
	}
	pool, err := ants.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, err
	}
	e := &AntsExecutor{
		pool:    pool,
		results: make(map[uint64]jobResult),
		log:     log,
	}
	e.cond = sync.NewCond(&e.mu)
	return e, nil
}

// antsTicket identifies a job posted to an AntsExecutor.
type antsTicket struct {
	id  uint64
	exe *AntsExecutor
}

func (t antsTicket) Await() (value.Value, error) {
	return t.exe.getResult(t.id)
}

// RegisterJob matches environment.Executor's contract.
func (e *AntsExecutor) RegisterJob(job func() (value.Value, error)) value.Awaitable {
	e.mu.Lock()
	id := e.counter
	e.counter++
	e.mu.Unlock()

	submitErr := e.pool.Submit(func() {
		val, err := job()
		e.mu.Lock()
		e.results[id] = jobResult{val: val, err: err}
		e.cond.Broadcast()
		e.mu.Unlock()
	})
	if submitErr != nil {
		e.mu.Lock()
		e.results[id] = jobResult{err: submitErr}
		e.cond.Broadcast()
		e.mu.Unlock()
	}

	return antsTicket{id: id, exe: e}
}

func (e *AntsExecutor) getResult(id uint64) (value.Value, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for {
		if r, ok := e.results[id]; ok {
			delete(e.results, id)
			return r.val, r.err
		}
		e.cond.Wait()
	}
}

// Stop releases the ants pool.
func (e *AntsExecutor) Stop() {
	e.pool.Release()
	e.log.Debug("ants executor stopped")
}
