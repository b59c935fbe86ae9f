// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned by Register when an account with
	// the same email (exact, case-sensitive match) is already stored.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidCredentials is returned by Authenticate when no account
	// matches both email and password. It intentionally does not say which
	// of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrContactNotFound is returned when a contact index is outside the
	// owner's list.
	ErrContactNotFound = errors.New("contact not found")

	// ErrCorruptStore is matched by every [CorruptStoreError].
	ErrCorruptStore = errors.New("stored data is corrupt")
)

// Backend errors. Both are safe to retry.
var (
	// ErrStorageUnavailable is returned when the backend cannot be reached
	// or reports a transient failure.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageTimeout is returned by [TimeoutStore] when a call does not
	// complete within the configured bound.
	ErrStorageTimeout = errors.New("storage timeout")
)

// Low-level SQL failures, wrapped together with the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// CorruptStoreError reports a stored value under Key that could not be
// decoded. The read fails instead of silently starting from an empty list.
type CorruptStoreError struct {
	Key string
	Err error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt value under key %q: %v", e.Key, e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCorruptStore) hold for every CorruptStoreError.
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}
