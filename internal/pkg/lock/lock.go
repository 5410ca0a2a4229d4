// Package lock provides exclusive locks with bounded, first-come-first-served
// waiting. Waiters are admitted in arrival order, and a waiter that runs out
// of time leaves the queue without holding the lock.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

var ErrTimeout = errors.New("lock wait timed out")

// Release gives the lock back. Calling it more than once is a no-op.
type Release func()

type Mutex struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewMutex returns a lock whose waits are bounded by timeout. A zero timeout
// waits until ctx is done.
func NewMutex(timeout time.Duration) *Mutex {
	return &Mutex{
		sem:     semaphore.NewWeighted(1),
		timeout: timeout,
	}
}

func (m *Mutex) Acquire(ctx context.Context) (Release, error) {
	if err := acquire(ctx, m.sem, m.timeout); err != nil {
		return nil, err
	}
	return onceRelease(func() { m.sem.Release(1) }), nil
}

// KeyedMutex serializes holders of the same key while leaving different keys
// independent. Entries are dropped once no holder or waiter references them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
	timeout time.Duration
}

type keyedEntry struct {
	sem  *semaphore.Weighted
	refs int
}

func NewKeyedMutex(timeout time.Duration) *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*keyedEntry),
		timeout: timeout,
	}
}

func (k *KeyedMutex) Acquire(ctx context.Context, key string) (Release, error) {
	e := k.ref(key)
	if err := acquire(ctx, e.sem, k.timeout); err != nil {
		k.unref(key, e)
		return nil, err
	}
	return onceRelease(func() {
		e.sem.Release(1)
		k.unref(key, e)
	}), nil
}

// Len reports how many keys are currently held or awaited.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedMutex) ref(key string) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry{sem: semaphore.NewWeighted(1)}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedMutex) unref(key string, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}

func acquire(ctx context.Context, sem *semaphore.Weighted, timeout time.Duration) error {
	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := sem.Acquire(waitCtx, 1); err != nil {
		// The caller's own cancellation wins over our timeout.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return ErrTimeout
	}
	return nil
}

func onceRelease(fn func()) Release {
	var once sync.Once
	return func() { once.Do(fn) }
}
