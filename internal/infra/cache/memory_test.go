package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(time.Minute)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_AcquireLock_SingleWinner(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	key := BranchDateLockKey(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	var (
		wg      sync.WaitGroup
		winners int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := c.AcquireLock(ctx, key, time.Minute)
			if err == nil && ok {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners)

	require.NoError(t, c.ReleaseLock(ctx, key))
	ok, err := c.AcquireLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "lock:branch:3:date:2025-03-10", BranchDateLockKey(3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))

	table := int64(7)
	assert.Equal(t, "lock:branch:3:date:2025-03-10:table:7", SlotLockKey(3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), &table))
	assert.Equal(t, "lock:branch:3:date:2025-03-10", SlotLockKey(3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), nil))
	assert.Equal(t, "notifications:prefs:CUSTOMER:7", PreferencesKey("CUSTOMER", 7))
}
