// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

type Services struct {
	PresenceService PresenceService
	AppInfoService  AppInfoService
}

func NewServices(dispatcher Dispatcher, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PresenceService: NewPresenceService(dispatcher, logger),
		AppInfoService:  appInfo,
	}, nil
}
