package store

import (
	"context"
	"fmt"
	"sync"
)

// UpdateFunc computes the new value of a key from its current one. found is
// false when the key does not exist yet. Returning an error aborts the
// update without writing.
type UpdateFunc func(current string, found bool) (string, error)

// Transactor runs read-modify-write sequences against a [KeyValueStore],
// allowing at most one sequence per key at a time. Sequences on different
// keys run concurrently.
type Transactor struct {
	kv KeyValueStore

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func NewTransactor(kv KeyValueStore) *Transactor {
	return &Transactor{
		kv:    kv,
		locks: make(map[string]*keyLock),
	}
}

// Update reads key, applies fn and writes the result back while holding the
// key's lock. It gives up with ctx.Err() if the lock cannot be acquired
// before ctx is done.
func (t *Transactor) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := t.lock(ctx, key); err != nil {
		return err
	}
	defer t.unlock(key)

	current, found, err := t.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %q: %w", key, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if err = t.kv.Set(ctx, key, next); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	return nil
}

func (t *Transactor) lock(ctx context.Context, key string) error {
	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		t.locks[key] = l
	}
	l.refs++
	t.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		t.release(key, l)
		return ctx.Err()
	}
}

func (t *Transactor) unlock(key string) {
	t.mu.Lock()
	l := t.locks[key]
	t.mu.Unlock()

	<-l.ch
	t.release(key, l)
}

// release drops one reference and forgets the lock once nobody waits on it.
func (t *Transactor) release(key string, l *keyLock) {
	t.mu.Lock()
	defer t.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(t.locks, key)
	}
}
