package executor

import (
	"fmt"
	"log/slog"

	"github.com/conneroisu/cash/internal/value"
)

// Backend is the common contract both worker-pool implementations
// satisfy, so a driver can pick one at startup without depending on
// either concrete type.
type Backend interface {
	RegisterJob(job func() (value.Value, error)) value.Awaitable
	Stop()
}

// NewBackend builds the Backend named by kind: "ants" selects the
// panjf2000/ants/v2-backed AntsExecutor, anything else (including "")
// selects the default gammazero/workerpool-backed Executor.
func NewBackend(log *slog.Logger, kind string) (Backend, error) {
	switch kind {
	case "", "workerpool":
		return New(log), nil
	case "ants":
		return NewAntsExecutor(log)
	default:
		return nil, fmt.Errorf("executor: unknown pool backend %q", kind)
	}
}
