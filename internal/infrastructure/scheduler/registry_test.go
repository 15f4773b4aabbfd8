package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stockmonitor-service/internal/domain"
	"stockmonitor-service/internal/infrastructure/scheduler"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tickEvery = 20 * time.Millisecond

func newRegistry(t *testing.T) *scheduler.Registry {
	t.Helper()
	r := scheduler.NewRegistry(context.Background(), zap.NewNop())
	t.Cleanup(r.Stop)
	return r
}

func counter(n *atomic.Int64) func(context.Context) {
	return func(context.Context) { n.Add(1) }
}

func TestInstall_TicksRepeatedly(t *testing.T) {
	r := newRegistry(t)
	var n atomic.Int64
	job, err := r.Install("AAPL", tickEvery, counter(&n))
	require.NoError(t, err)
	require.Equal(t, domain.Symbol("AAPL"), job.Symbol)
	require.Equal(t, tickEvery, job.Interval)
	require.False(t, job.StartedAt.IsZero())

	require.Eventually(t, func() bool { return n.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestInstall_RejectsNonPositiveInterval(t *testing.T) {
	r := newRegistry(t)
	var n atomic.Int64
	for _, d := range []time.Duration{0, -time.Second} {
		_, err := r.Install("AAPL", d, counter(&n))
		require.ErrorIs(t, err, domain.ErrInvalidInterval)
	}
	require.Empty(t, r.Jobs())
}

func TestInstall_ReplacesExistingJob(t *testing.T) {
	r := newRegistry(t)
	var first, second atomic.Int64

	_, err := r.Install("AAPL", tickEvery, counter(&first))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return first.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)

	_, err = r.Install("AAPL", 2*tickEvery, counter(&second))
	require.NoError(t, err)

	// let any run dispatched before the replacement land
	time.Sleep(3 * tickEvery)
	settled := first.Load()

	require.Eventually(t, func() bool { return second.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, settled, first.Load(), "replaced job kept firing")

	jobs := r.Jobs()
	require.Len(t, jobs, 1)
	require.Equal(t, 2*tickEvery, jobs[0].Interval)
}

func TestInstall_FirstTickWaitsForInterval(t *testing.T) {
	r := newRegistry(t)
	var n atomic.Int64
	_, err := r.Install("AAPL", time.Hour, counter(&n))
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	require.Zero(t, n.Load())
}

func TestInstall_SlowTickDoesNotBlockSchedule(t *testing.T) {
	r := newRegistry(t)
	var started atomic.Int64
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	_, err := r.Install("SLOW", tickEvery, func(context.Context) {
		started.Add(1)
		<-release
	})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return started.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestInstall_SymbolsAreIndependent(t *testing.T) {
	r := newRegistry(t)
	var a, b atomic.Int64
	_, err := r.Install("A", tickEvery, counter(&a))
	require.NoError(t, err)
	_, err = r.Install("B", tickEvery, counter(&b))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return a.Load() >= 2 && b.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	jobs := r.Jobs()
	require.Len(t, jobs, 2)
	require.Equal(t, domain.Symbol("A"), jobs[0].Symbol)
	require.Equal(t, domain.Symbol("B"), jobs[1].Symbol)
}

type ctxKey struct{}

func TestInstall_TickReceivesRegistryContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "monitor")
	r := scheduler.NewRegistry(ctx, nil)
	t.Cleanup(r.Stop)

	got := make(chan any, 1)
	_, err := r.Install("AAPL", tickEvery, func(c context.Context) {
		select {
		case got <- c.Value(ctxKey{}):
		default:
		}
	})
	require.NoError(t, err)
	select {
	case v := <-got:
		require.Equal(t, "monitor", v)
	case <-time.After(2 * time.Second):
		t.Fatal("tick never ran")
	}
}
