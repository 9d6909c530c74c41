// Package executor implements cash's bounded worker pool: a
// fixed-size pool that accepts a job, hands back a single-use ticket, and
// blocks on Await until the result lands in a shared, lock-guarded result
// map keyed by ticket id.
//
// Grounded on Tangerg-lynx/future/pool.go's Pool abstraction (a thin
// interface over interchangeable goroutine/ants/conc/workerpool
// backends) and Tangerg-lynx's Future[V]/FutureTask design for the
// await-blocks-the-caller contract; the default backend wraps
// gammazero/workerpool sized to runtime.GOMAXPROCS(0), matching
// PoolOfWorkerpool's adapter shape. The ticket/result-map bookkeeping is
// regrounded directly on the original cash interpreter's Executor
// (backend/src/executor.rs), which also keys a results map by a
// wrapping counter and blocks get_result until the entry appears.
package executor

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/gammazero/workerpool"

	"github.com/conneroisu/cash/internal/value"
)

// Job is a unit of work posted to the executor: evaluate something and
// produce a Value or an error. internal/ast supplies closures over an
// AST node + context so this package need not import internal/ast.
type Job func() (value.Value, error)

// jobResult is what a worker deposits for a ticket.
type jobResult struct {
	val value.Value
	err error
}

// Executor is a bounded worker pool with ticket-based job submission.
type Executor struct {
	pool *workerpool.WorkerPool

	mu      sync.Mutex
	cond    *sync.Cond
	counter uint64
	results map[uint64]jobResult

	log *slog.Logger
}

// New creates an Executor sized to the available hardware parallelism.
func New(log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	e := &Executor{
		pool:    workerpool.New(runtime.GOMAXPROCS(0)),
		results: make(map[uint64]jobResult),
		log:     log,
	}
	e.cond = sync.NewCond(&e.mu)
	log.Debug("executor started", "workers", runtime.GOMAXPROCS(0))
	return e
}

// Ticket identifies a posted job; it implements value.Awaitable so a
// value.Future can block on it without this package's Executor type
// leaking into the value package.
type Ticket struct {
	id  uint64
	exe *Executor
}

// Await blocks until the ticket's job completes and removes it from the
// shared result map. Tickets are single-use: since the result is gone
// after the first Await, a second Await on the same ticket blocks forever.
func (t Ticket) Await() (value.Value, error) {
	return t.exe.getResult(t.id)
}

// RegisterJob enqueues job on the pool, assigns a monotonically
// increasing (wrapping) ticket id, and returns immediately. The return
// type is value.Awaitable (rather than the concrete Ticket) so Executor
// satisfies environment.Executor without that package importing this one.
func (e *Executor) RegisterJob(job func() (value.Value, error)) value.Awaitable {
	e.mu.Lock()
	id := e.counter
	e.counter++
	e.mu.Unlock()

	e.pool.Submit(func() {
		val, err := job()
		e.mu.Lock()
		e.results[id] = jobResult{val: val, err: err}
		e.cond.Broadcast()
		e.mu.Unlock()
	})

	return Ticket{id: id, exe: e}
}

// getResult blocks until id's result is present, then removes it.
func (e *Executor) getResult(id uint64) (value.Value, error) {
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

// Stop drains the pool. The runtime driver calls this at shutdown so
// worker goroutines terminate with the process even if a spawned future
// was never awaited.
func (e *Executor) Stop() {
	e.pool.StopWait()
	e.log.Debug("executor stopped")
}
