// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/internal/workers"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrEmptyPatch:         http.StatusBadRequest,

	service.ErrInvalidConfiguration: http.StatusBadRequest,
	service.ErrControllerClosed:     http.StatusServiceUnavailable,

	adapter.ErrDiscordNotRunning: http.StatusServiceUnavailable,
	adapter.ErrConnectionBusy:    http.StatusServiceUnavailable,

	store.ErrStoreUnavailable: http.StatusServiceUnavailable,
	store.ErrStoreClosed:      http.StatusServiceUnavailable,

	workers.ErrPumpStopped:   http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
