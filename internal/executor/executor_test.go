package executor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/cash/internal/value"
)

func TestRegisterJobAwaitReturnsResult(t *testing.T) {
	e := New(nil)
	defer e.Stop()

	ticket := e.RegisterJob(func() (value.Value, error) {
		return value.Int(42), nil
	})

	v, err := ticket.Await()
	require.NoError(t, err)
	require.Equal(t, value.Int(42), v)
}

func TestRegisterJobPropagatesError(t *testing.T) {
	e := New(nil)
	defer e.Stop()

	wantErr := errors.New("boom")
	ticket := e.RegisterJob(func() (value.Value, error) {
		return nil, wantErr
	})

	_, err := ticket.Await()
	require.ErrorIs(t, err, wantErr)
}

func TestTicketsAreIndependentAcrossConcurrentJobs(t *testing.T) {
	e := New(nil)
	defer e.Stop()

	var tickets []value.Awaitable
	for i := 0; i < 20; i++ {
		i := i
		tickets = append(tickets, e.RegisterJob(func() (value.Value, error) {
			return value.Int(i), nil
		}))
	}

	for i, tk := range tickets {
		v, err := tk.Await()
		require.NoError(t, err)
		require.Equal(t, value.Int(i), v)
	}
}

func TestAntsExecutorRegisterJobAwait(t *testing.T) {
	e, err := NewAntsExecutor(nil)
	require.NoError(t, err)
	defer e.Stop()

	ticket := e.RegisterJob(func() (value.Value, error) {
		return value.String("ants"), nil
	})

	v, err := ticket.Await()
	require.NoError(t, err)
	require.Equal(t, value.String("ants"), v)
}

func TestNewBackendSelectsByName(t *testing.T) {
	workerpoolBackend, err := NewBackend(nil, "workerpool")
	require.NoError(t, err)
	defer workerpoolBackend.Stop()
	_, ok := workerpoolBackend.(*Executor)
	require.True(t, ok)

	antsBackend, err := NewBackend(nil, "ants")
	require.NoError(t, err)
	defer antsBackend.Stop()
	_, ok = antsBackend.(*AntsExecutor)
	require.True(t, ok)

	_, err = NewBackend(nil, "made-up-backend")
	require.Error(t, err)
}

func TestFanOutPreservesIndexOrder(t *testing.T) {
	results, err := FanOut(5, func(i int) (value.Value, error) {
		return value.Int(i * i), nil
	})
	require.NoError(t, err)
	require.Equal(t, []value.Value{
		value.Int(0), value.Int(1), value.Int(4), value.Int(9), value.Int(16),
	}, results)
}

func TestFanOutReturnsFirstError(t *testing.T) {
	wantErr := errors.New("fan-out failure")
	_, err := FanOut(4, func(i int) (value.Value, error) {
		if i == 2 {
			return nil, wantErr
		}
		return value.Int(i), nil
	})
	require.ErrorIs(t, err, wantErr)
}
