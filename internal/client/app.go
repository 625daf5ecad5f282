// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/config"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/internal/tui"
	"github.com/MKhiriev/go-rich-presence/models"
)

// panel is the part of *tui.TUI the app drives.
type panel interface {
	Run(ctx context.Context) error
}

type App struct {
	controller *service.PresenceController
	settings   store.SettingsStore
	ui         panel
	logger     *logger.Logger
}

func NewApp(settings store.SettingsStore, publisher adapter.PresencePublisher, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	controller := service.NewPresenceController(settings, publisher, logger,
		service.WithButtons(cfg.Presence.Buttons),
	)

	ui, err := tui.New(controller, cfg.Presence.PollInterval, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		controller: controller,
		settings:   settings,
		ui:         ui,
		logger:     logger,
	}, nil
}

// Run loads the saved configuration and blocks in the panel until the user
// quits. The settings store is closed on return.
func (a *App) Run() error {
	ctx := context.Background()
	defer func() {
		if err := a.settings.Close(); err != nil {
			a.logger.Err(err).Msg("error closing settings store")
		}
	}()

	if err := a.controller.Load(ctx); err != nil {
		return fmt.Errorf("load presence configuration: %w", err)
	}

	a.logger.Info().Msg("presence panel started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run presence panel: %w", err)
	}
	a.logger.Info().Msg("presence panel stopped")

	return nil
}
