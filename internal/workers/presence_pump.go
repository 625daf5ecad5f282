// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/metrics"
	"github.com/MKhiriev/go-rich-presence/internal/service"
)

// ErrPumpStopped is returned by Do once the pump has shut down.
var ErrPumpStopped = errors.New("presence pump stopped")

const closeTimeout = 5 * time.Second

type pumpCommand struct {
	fn    func(c *service.PresenceController) error
	errCh chan error
}

// PresencePump is the only goroutine that touches its controller. It polls
// the controller on a fixed interval and runs commands submitted with Do in
// between polls. When Run's context ends the controller is closed.
type PresencePump struct {
	controller *service.PresenceController
	interval   time.Duration
	clock      clockwork.Clock
	logger     *logger.Logger

	commands chan pumpCommand
	done     chan struct{}
}

// NewPresencePump creates a pump for controller. A nil clock means the real
// wall clock.
func NewPresencePump(controller *service.PresenceController, interval time.Duration, clock clockwork.Clock, logger *logger.Logger) *PresencePump {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PresencePump{
		controller: controller,
		interval:   interval,
		clock:      clock,
		logger:     logger,
		commands:   make(chan pumpCommand),
		done:       make(chan struct{}),
	}
}

// Run implements [Worker].
func (p *PresencePump) Run(ctx context.Context) {
	defer close(p.done)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Dur("interval", p.interval).Msg("presence pump started")
	for {
		select {
		case <-ctx.Done():
			closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
			if err := p.controller.Close(closeCtx); err != nil {
				p.logger.Err(err).Msg("error closing presence controller")
			}
			cancel()
			p.logger.Info().Msg("presence pump stopped")
			return
		case <-ticker.Chan():
			p.controller.Poll()
		case cmd := <-p.commands:
			start := p.clock.Now()
			err := cmd.fn(p.controller)
			metrics.PumpCommandDuration.Observe(p.clock.Since(start).Seconds())
			cmd.errCh <- err
		}
	}
}

// Do implements service.Dispatcher. It waits until the pump has run fn, or
// until ctx ends. A command that was already accepted still runs after ctx
// ends; only the wait is abandoned.
func (p *PresencePump) Do(ctx context.Context, fn func(c *service.PresenceController) error) error {
	cmd := pumpCommand{fn: fn, errCh: make(chan error, 1)}

	select {
	case p.commands <- cmd:
	case <-p.done:
		return ErrPumpStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run has returned.
func (p *PresencePump) Done() <-chan struct{} {
	return p.done
}
