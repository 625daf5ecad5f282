// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/internal/store"
)

var (
	ErrNoController        = errors.New("presence controller is required")
	ErrInvalidPollInterval = errors.New("poll interval must be positive")
)

// humanizeError turns controller errors into a one-line status message.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidConfiguration):
		return "App ID must be a positive number"
	case errors.Is(err, adapter.ErrDiscordNotRunning):
		return "Discord is not running"
	case errors.Is(err, adapter.ErrConnectionBusy):
		return "Another presence connection is already open"
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrStoreNotMigrated):
		return "Settings storage is unavailable"
	case errors.Is(err, service.ErrControllerClosed):
		return "Presence panel is shutting down"
	}
	return err.Error()
}
