// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/client"
	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("presence").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("presence", cfg.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	settings, err := store.NewSettingsStore(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create settings store")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(settings, adapter.NewDiscordPublisher(log), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init presence app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("presence run error")
	}
}
