// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/handler"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/server"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/internal/workers"
	"github.com/MKhiriev/go-rich-presence/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("presenced")
	cfg, err := config.GetDaemonConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	settings, err := store.NewSettingsStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating settings store")
	}
	defer func() {
		if closeErr := settings.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing settings store")
		}
	}()

	controller := service.NewPresenceController(settings, adapter.NewDiscordPublisher(log), log,
		service.WithButtons(cfg.Presence.Buttons),
		service.WithObserver(service.MultiObserver(
			service.NewLoggingObserver(log),
			service.NewMetricsObserver(),
		)),
	)
	if err = controller.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading presence configuration")
	}

	pump := workers.NewPresencePump(controller, cfg.Presence.PollInterval, nil, log)

	services, err := service.NewServices(pump, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(pump), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
