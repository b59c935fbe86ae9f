// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
)

// humanizeError maps an error returned by the services to the message shown
// on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) && vErr.Message != "" {
		return vErr.Message
	}

	switch {
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return app.MsgAccountExists
	case errors.Is(err, store.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, store.ErrContactNotFound):
		return app.MsgContactNotFound
	case errors.Is(err, service.ErrNoActiveSession):
		return app.MsgSessionExpired
	case errors.Is(err, store.ErrCorruptStore):
		return app.MsgCorruptStore
	case errors.Is(err, store.ErrStorageTimeout):
		return app.MsgStorageTimeout
	case errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageUnavail
	}

	return app.MsgUnexpectedFailed
}
