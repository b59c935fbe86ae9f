// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_Update(t *testing.T) {
	kv := NewMemoryStore()
	tx := NewTransactor(kv)
	ctx := context.Background()

	err := tx.Update(ctx, "counter", func(cur string, found bool) (string, error) {
		assert.False(t, found)
		return "1", nil
	})
	require.NoError(t, err)

	err = tx.Update(ctx, "counter", func(cur string, found bool) (string, error) {
		assert.True(t, found)
		assert.Equal(t, "1", cur)
		return "2", nil
	})
	require.NoError(t, err)

	v, _, _ := kv.Get(ctx, "counter")
	assert.Equal(t, "2", v)
	assert.Empty(t, tx.locks, "locks are released after use")
}

func TestTransactor_AbortDoesNotWrite(t *testing.T) {
	kv := NewMemoryStore()
	tx := NewTransactor(kv)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", "orig"))

	abort := errors.New("abort")
	err := tx.Update(ctx, "k", func(string, bool) (string, error) { return "changed", abort })
	require.ErrorIs(t, err, abort)

	v, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, "orig", v)
}

func TestTransactor_ReadAndWriteErrors(t *testing.T) {
	tx := NewTransactor(failingStore{err: ErrStorageUnavailable})

	err := tx.Update(context.Background(), "k", func(string, bool) (string, error) {
		t.Fatal("fn must not run when the read fails")
		return "", nil
	})
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestTransactor_NoLostUpdates(t *testing.T) {
	kv := NewMemoryStore()
	tx := NewTransactor(kv)
	ctx := context.Background()

	const workers = 64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.Update(ctx, "counter", func(cur string, found bool) (string, error) {
				n := 0
				if found {
					n, _ = strconv.Atoi(cur)
				}
				return strconv.Itoa(n + 1), nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, _, _ := kv.Get(ctx, "counter")
	assert.Equal(t, strconv.Itoa(workers), v)
	assert.Empty(t, tx.locks)
}

func TestTransactor_LockWaitHonoursContext(t *testing.T) {
	tx := NewTransactor(NewMemoryStore())

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tx.Update(context.Background(), "k", func(string, bool) (string, error) {
			close(holding)
			<-release
			return "x", nil
		})
	}()
	<-holding

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tx.Update(ctx, "k", func(string, bool) (string, error) { return "y", nil })
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-done
	assert.Empty(t, tx.locks)
}

func TestTransactor_DifferentKeysDoNotBlock(t *testing.T) {
	tx := NewTransactor(NewMemoryStore())

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tx.Update(context.Background(), "a", func(string, bool) (string, error) {
			close(holding)
			<-release
			return "x", nil
		})
	}()
	<-holding

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, tx.Update(ctx, "b", func(string, bool) (string, error) { return "y", nil }))

	close(release)
	<-done
}
