// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-birthday-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a user logs in and returns their session.
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
