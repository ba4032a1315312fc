package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newStarted(t *testing.T) *Scheduler {
	t.Helper()
	s, err := New(nopLogger{})
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Shutdown() })
	return s
}

func TestScheduleOnce_PastRunsImmediately(t *testing.T) {
	s := newStarted(t)
	done := make(chan struct{})

	err := s.ScheduleOnce("booking:1:2h", time.Now().Add(-time.Hour), func(context.Context) {
		close(done)
	}, "booking:1")
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestScheduleOnce_ReplacesSameKey(t *testing.T) {
	s := newStarted(t)
	var first, second int32

	require.NoError(t, s.ScheduleOnce("booking:1:24h", time.Now().Add(300*time.Millisecond), func(context.Context) {
		atomic.AddInt32(&first, 1)
	}))
	require.NoError(t, s.ScheduleOnce("booking:1:24h", time.Now().Add(300*time.Millisecond), func(context.Context) {
		atomic.AddInt32(&second, 1)
	}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&second) == 1 }, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&first))
}

func TestCancelByTag(t *testing.T) {
	s := newStarted(t)
	var ran int32

	for _, key := range []string{"booking:5:24h", "booking:5:2h", "booking:5:thankyou"} {
		require.NoError(t, s.ScheduleOnce(key, time.Now().Add(300*time.Millisecond), func(context.Context) {
			atomic.AddInt32(&ran, 1)
		}, "booking:5"))
	}
	assert.Len(t, s.Pending(), 3)

	s.CancelByTag("booking:5")

	assert.Empty(t, s.Pending())
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
}

func TestEvery(t *testing.T) {
	s := newStarted(t)
	var runs int32

	require.NoError(t, s.Every("sweep", 50*time.Millisecond, func(context.Context) {
		atomic.AddInt32(&runs, 1)
	}))

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 2 }, 2*time.Second, 20*time.Millisecond)
}
