// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/models"
)

// Dispatcher runs fn on the goroutine that owns the controller and returns
// its error.
type Dispatcher interface {
	Do(ctx context.Context, fn func(c *PresenceController) error) error
}

type presenceService struct {
	dispatcher Dispatcher
	logger     *logger.Logger
}

// NewPresenceService returns a [PresenceService] that runs every call
// through dispatcher.
func NewPresenceService(dispatcher Dispatcher, logger *logger.Logger) PresenceService {
	return &presenceService{dispatcher: dispatcher, logger: logger}
}

func (s *presenceService) Status(ctx context.Context) (models.PresenceStatus, error) {
	return s.run(ctx, nil)
}

func (s *presenceService) ApplyPatch(ctx context.Context, patch models.PresenceConfigPatch) (models.PresenceStatus, error) {
	return s.run(ctx, func(c *PresenceController) error {
		return c.ApplyPatch(ctx, patch)
	})
}

func (s *presenceService) Start(ctx context.Context) (models.PresenceStatus, error) {
	return s.run(ctx, func(c *PresenceController) error {
		return c.Activate(ctx)
	})
}

func (s *presenceService) Stop(ctx context.Context) (models.PresenceStatus, error) {
	return s.run(ctx, func(c *PresenceController) error {
		return c.Deactivate(ctx)
	})
}

// run executes fn and takes a status snapshot in the same dispatch, so the
// snapshot reflects exactly the state fn left behind.
func (s *presenceService) run(ctx context.Context, fn func(c *PresenceController) error) (models.PresenceStatus, error) {
	log := logger.FromContext(ctx)

	var status models.PresenceStatus
	err := s.dispatcher.Do(ctx, func(c *PresenceController) error {
		if fn != nil {
			if err := fn(c); err != nil {
				return err
			}
		}
		status = c.Status()
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*presenceService.run").Msg("presence command failed")
		return models.PresenceStatus{}, err
	}

	return status, nil
}
