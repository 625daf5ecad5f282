// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the presence controller to the outside world.
//
// [PresencePublisher] is the Discord side: it opens at most one
// [PresenceConnection] at a time, executes activity requests on a worker
// goroutine and hands their results back only when the owner calls
// RunCallbacks. [ControlClient] is the HTTP side used by presencectl to drive
// a running daemon.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rich-presence/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ResultCallback receives the result of a publisher request. It is invoked
// from RunCallbacks on the caller's goroutine.
type ResultCallback func(result models.Result)

// PresencePublisher opens connections to the local Discord client.
type PresencePublisher interface {
	// Open starts a connection for the given application id. Only one
	// connection may be open at a time; a second Open before Close returns
	// [ErrConnectionBusy].
	Open(appID int64) (PresenceConnection, error)
}

// PresenceConnection is a live rich presence session. Requests are
// asynchronous: their callbacks are held back until RunCallbacks is called.
type PresenceConnection interface {
	// ClearActivity removes the currently shown activity.
	ClearActivity(cb ResultCallback)

	// UpdateActivity replaces the shown activity.
	UpdateActivity(activity models.Activity, cb ResultCallback)

	// RunCallbacks delivers every result that became available since the
	// previous call, in request order. It never blocks on Discord.
	RunCallbacks()

	// Close waits for in-flight requests, then disconnects. Results that were
	// never delivered are dropped. Calling Close twice is a no-op.
	Close() error
}

// ControlClient drives a presence daemon over its HTTP control API.
type ControlClient interface {
	// Status returns the daemon's current presence snapshot.
	Status(ctx context.Context) (models.PresenceStatus, error)

	// Patch changes configuration fields without starting anything.
	Patch(ctx context.Context, patch models.PresenceConfigPatch) (models.PresenceStatus, error)

	// Start activates the presence, or updates it when already active.
	Start(ctx context.Context) (models.PresenceStatus, error)

	// Stop clears the presence and disconnects.
	Stop(ctx context.Context) (models.PresenceStatus, error)
}
