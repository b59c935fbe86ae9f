// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoActiveSession is returned when a contact operation is called
	// without an authenticated session.
	ErrNoActiveSession = errors.New("no active session")
)
