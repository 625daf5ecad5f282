// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/models"
)

type TUI struct {
	controller   *service.PresenceController
	buildInfo    models.AppBuildInfo
	pollInterval time.Duration
	logger       *logger.Logger
}

func New(controller *service.PresenceController, pollInterval time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if controller == nil {
		return nil, ErrNoController
	}
	if pollInterval <= 0 {
		return nil, ErrInvalidPollInterval
	}

	return &TUI{
		controller:   controller,
		buildInfo:    buildInfo,
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

// Run shows the panel and blocks until the user quits. The controller is
// closed before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	model := newPanelModel(ctx, t.controller, t.pollInterval, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if result, ok := finalModel.(panelModel); !ok || !result.closed {
		// Interrupted without going through quit.
		if closeErr := t.controller.Close(context.WithoutCancel(ctx)); closeErr != nil {
			t.logger.Err(closeErr).Msg("error closing presence controller")
		}
	}
	return err
}
