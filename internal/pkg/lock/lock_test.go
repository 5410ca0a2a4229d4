//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"smart-parking/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutex(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		m := lock.NewMutex(time.Second)

		release, err := m.Acquire(context.Background())
		require.NoError(t, err)
		release()

		release, err = m.Acquire(context.Background())
		require.NoError(t, err)
		release()
	})

	t.Run("double release is a no-op", func(t *testing.T) {
		m := lock.NewMutex(50 * time.Millisecond)

		release, err := m.Acquire(context.Background())
		require.NoError(t, err)
		release()
		release()

		held, err := m.Acquire(context.Background())
		require.NoError(t, err)
		defer held()

		_, err = m.Acquire(context.Background())
		assert.ErrorIs(t, err, lock.ErrTimeout, "a second release must not free the lock twice")
	})

	t.Run("wait is bounded by timeout", func(t *testing.T) {
		m := lock.NewMutex(30 * time.Millisecond)

		release, err := m.Acquire(context.Background())
		require.NoError(t, err)
		defer release()

		start := time.Now()
		_, err = m.Acquire(context.Background())
		assert.ErrorIs(t, err, lock.ErrTimeout)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("caller cancellation is reported as context error", func(t *testing.T) {
		m := lock.NewMutex(time.Second)

		release, err := m.Acquire(context.Background())
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = m.Acquire(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("mutual exclusion under contention", func(t *testing.T) {
		m := lock.NewMutex(5 * time.Second)

		var inside, maxInside int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := m.Acquire(context.Background())
				if !assert.NoError(t, err) {
					return
				}
				defer release()

				n := atomic.AddInt32(&inside, 1)
				for {
					cur := atomic.LoadInt32(&maxInside)
					if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInside)
	})
}

func TestKeyedMutex(t *testing.T) {
	t.Run("different keys do not block each other", func(t *testing.T) {
		k := lock.NewKeyedMutex(30 * time.Millisecond)

		releaseA, err := k.Acquire(context.Background(), "a")
		require.NoError(t, err)
		defer releaseA()

		releaseB, err := k.Acquire(context.Background(), "b")
		require.NoError(t, err)
		defer releaseB()

		assert.Equal(t, 2, k.Len())
	})

	t.Run("same key waits and times out", func(t *testing.T) {
		k := lock.NewKeyedMutex(30 * time.Millisecond)

		release, err := k.Acquire(context.Background(), "a")
		require.NoError(t, err)

		_, err = k.Acquire(context.Background(), "a")
		assert.ErrorIs(t, err, lock.ErrTimeout)

		release()
		assert.Equal(t, 0, k.Len(), "entries are dropped once unreferenced")
	})

	t.Run("waiter proceeds after holder releases", func(t *testing.T) {
		k := lock.NewKeyedMutex(time.Second)

		release, err := k.Acquire(context.Background(), "ticket")
		require.NoError(t, err)

		acquired := make(chan struct{})
		go func() {
			r, err := k.Acquire(context.Background(), "ticket")
			if assert.NoError(t, err) {
				close(acquired)
				r()
			}
		}()

		select {
		case <-acquired:
			t.Fatal("waiter acquired a held key")
		case <-time.After(20 * time.Millisecond):
		}

		release()

		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("waiter never acquired the key")
		}
	})
}
