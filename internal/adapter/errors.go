// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Publisher errors.
var (
	// ErrConnectionBusy is returned by Open while another connection is open.
	ErrConnectionBusy = errors.New("a presence connection is already open")

	// ErrDiscordNotRunning is returned by Open when the local Discord client
	// cannot be reached.
	ErrDiscordNotRunning = errors.New("discord client is not running")

	// ErrInvalidAppID is returned by Open for non-positive application ids.
	ErrInvalidAppID = errors.New("invalid application id")

	// ErrDisconnect is returned by Close when the IPC socket could not be
	// closed cleanly.
	ErrDisconnect = errors.New("error closing discord connection")
)

// Control API errors, mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
