package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single storage call when none is configured.
const DefaultTimeout = 5 * time.Second

// TimeoutStore bounds every call of the wrapped store. A call that runs past
// the bound returns [ErrStorageTimeout] even if the backend ignores its
// context; the backend call itself is left to finish in the background.
type TimeoutStore struct {
	next    KeyValueStore
	timeout time.Duration
}

func NewTimeoutStore(next KeyValueStore, timeout time.Duration) *TimeoutStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &TimeoutStore{next: next, timeout: timeout}
}

type getResult struct {
	value string
	found bool
	err   error
}

func (s *TimeoutStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan getResult, 1)
	go func() {
		v, found, err := s.next.Get(ctx, key)
		done <- getResult{value: v, found: found, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.found, s.mapErr(ctx, "get", key, r.err)
	case <-ctx.Done():
		return "", false, s.mapErr(ctx, "get", key, ctx.Err())
	}
}

func (s *TimeoutStore) Set(ctx context.Context, key, value string) error {
	return s.run(ctx, "set", key, func(ctx context.Context) error {
		return s.next.Set(ctx, key, value)
	})
}

func (s *TimeoutStore) Remove(ctx context.Context, key string) error {
	return s.run(ctx, "remove", key, func(ctx context.Context) error {
		return s.next.Remove(ctx, key)
	})
}

func (s *TimeoutStore) run(ctx context.Context, op, key string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return s.mapErr(ctx, op, key, err)
	case <-ctx.Done():
		return s.mapErr(ctx, op, key, ctx.Err())
	}
}

// mapErr turns an expired deadline into ErrStorageTimeout. Cancellation by
// the caller is returned as is.
func (s *TimeoutStore) mapErr(ctx context.Context, op, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %q after %s", ErrStorageTimeout, op, key, s.timeout)
	}
	return err
}
