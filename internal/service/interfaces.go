// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-rich-presence/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PresenceService is the thread-safe face of a [PresenceController] used by
// the HTTP control API. Every call is executed on the goroutine that owns
// the controller.
type PresenceService interface {
	Status(ctx context.Context) (models.PresenceStatus, error)
	ApplyPatch(ctx context.Context, patch models.PresenceConfigPatch) (models.PresenceStatus, error)
	Start(ctx context.Context) (models.PresenceStatus, error)
	Stop(ctx context.Context) (models.PresenceStatus, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ResultObserver receives every publisher result once it has been polled.
type ResultObserver interface {
	Observe(result models.CallbackResult)
}

// ButtonView renders the start/update button. The controller drops its view
// on Close, after which presentation changes are no longer pushed.
type ButtonView interface {
	SetButton(presentation models.ButtonPresentation)
}
