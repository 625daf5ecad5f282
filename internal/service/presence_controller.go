// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/metrics"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/models"
)

// PresenceController owns the lifecycle of one rich presence session.
//
// It starts Inactive. Activate opens a publisher connection and sends the
// current activity; further Activate calls only send updates. Deactivate
// clears the activity and releases the connection. Configuration lives in
// memory and is written back to the settings store: toggles as soon as they
// change, text fields whenever an activity is sent.
//
// A PresenceController is not safe for concurrent use. Callers either drive
// it from a single event loop (the terminal panel) or through a [Dispatcher]
// (the daemon). Poll must be called regularly while a session is active,
// otherwise publisher results are never delivered.
type PresenceController struct {
	store     store.SettingsStore
	publisher adapter.PresencePublisher
	clock     clockwork.Clock
	observer  ResultObserver
	view      ButtonView
	buttons   models.ButtonVariants
	logger    *logger.Logger

	config     models.PresenceConfig
	session    *presenceSession
	button     models.ButtonPresentation
	lastResult *models.CallbackResult
	closed     bool
}

type presenceSession struct {
	conn        adapter.PresenceConnection
	id          string
	activatedAt time.Time
	logger      *logger.Logger
}

// ControllerOption customises a [PresenceController].
type ControllerOption func(*PresenceController)

// WithClock replaces the wall clock used for timer timestamps.
func WithClock(clock clockwork.Clock) ControllerOption {
	return func(c *PresenceController) { c.clock = clock }
}

// WithObserver replaces the default logging observer.
func WithObserver(observer ResultObserver) ControllerOption {
	return func(c *PresenceController) { c.observer = observer }
}

// WithButtons sets the start/update button presentations.
func WithButtons(buttons models.ButtonVariants) ControllerOption {
	return func(c *PresenceController) { c.buttons = buttons }
}

// WithView attaches a button view from the start.
func WithView(view ButtonView) ControllerOption {
	return func(c *PresenceController) { c.view = view }
}

// NewPresenceController builds an Inactive controller with an empty
// configuration. Call Load to restore saved values.
func NewPresenceController(settings store.SettingsStore, publisher adapter.PresencePublisher, logger *logger.Logger, opts ...ControllerOption) *PresenceController {
	c := &PresenceController{
		store:     settings,
		publisher: publisher,
		clock:     clockwork.NewRealClock(),
		buttons:   models.DefaultButtonVariants(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.observer == nil {
		c.observer = NewLoggingObserver(logger)
	}
	c.button = c.buttons.Start

	return c
}

// Load restores the configuration from the settings store. Keys that were
// never saved keep their current value.
func (c *PresenceController) Load(ctx context.Context) error {
	texts := []struct {
		key string
		dst *string
	}{
		{store.KeyAppID, &c.config.AppID},
		{store.KeyStatus, &c.config.Status},
		{store.KeyDetails, &c.config.Details},
		{store.KeyLargeImage, &c.config.LargeImageKey},
		{store.KeyLargeImageDesc, &c.config.LargeImageDesc},
		{store.KeySmallImage, &c.config.SmallImageKey},
		{store.KeySmallImageDesc, &c.config.SmallImageDesc},
	}
	for _, t := range texts {
		ok, err := c.store.Has(ctx, t.key)
		if err != nil {
			return fmt.Errorf("load %s: %w", t.key, err)
		}
		if !ok {
			continue
		}
		if *t.dst, err = c.store.GetString(ctx, t.key); err != nil {
			return fmt.Errorf("load %s: %w", t.key, err)
		}
	}

	toggles := []struct {
		key string
		dst *bool
	}{
		{store.KeyLargeImageEnabled, &c.config.LargeImageEnabled},
		{store.KeySmallImageEnabled, &c.config.SmallImageEnabled},
		{store.KeyTimerEnabled, &c.config.TimerEnabled},
	}
	for _, t := range toggles {
		ok, err := c.store.Has(ctx, t.key)
		if err != nil {
			return fmt.Errorf("load %s: %w", t.key, err)
		}
		if !ok {
			continue
		}
		v, err := c.store.GetInt(ctx, t.key)
		if err != nil {
			return fmt.Errorf("load %s: %w", t.key, err)
		}
		*t.dst = store.IntToBool(v)
	}

	c.logger.Debug().Str("app_id", c.config.AppID).Msg("presence configuration loaded")
	return nil
}

// Config returns a copy of the in-memory configuration.
func (c *PresenceController) Config() models.PresenceConfig {
	return c.config
}

// IsActive reports whether a session is running.
func (c *PresenceController) IsActive() bool {
	return c.session != nil
}

// Button returns the presentation the start button should currently have.
func (c *PresenceController) Button() models.ButtonPresentation {
	return c.button
}

// Status returns a snapshot of the controller.
func (c *PresenceController) Status() models.PresenceStatus {
	status := models.PresenceStatus{
		State:  models.PresenceInactive,
		Button: c.button,
		Config: c.config,
	}
	if c.lastResult != nil {
		r := *c.lastResult
		status.LastResult = &r
	}
	if c.session != nil {
		at := c.session.activatedAt
		status.State = models.PresenceActive
		status.SessionID = c.session.id
		status.ActivatedAt = &at
	}
	return status
}

// AttachView sets the button view and pushes the current presentation to it.
func (c *PresenceController) AttachView(view ButtonView) {
	c.view = view
	if view != nil {
		view.SetButton(c.button)
	}
}

// SetAppID, SetStatus and the other text setters change the in-memory
// configuration only. Values are persisted when an activity is sent.
func (c *PresenceController) SetAppID(v string) { c.config.AppID = v }

func (c *PresenceController) SetStatus(v string) { c.config.Status = v }

func (c *PresenceController) SetDetails(v string) { c.config.Details = v }

func (c *PresenceController) SetLargeImageKey(v string) { c.config.LargeImageKey = v }

func (c *PresenceController) SetLargeImageDesc(v string) { c.config.LargeImageDesc = v }

func (c *PresenceController) SetSmallImageKey(v string) { c.config.SmallImageKey = v }

func (c *PresenceController) SetSmallImageDesc(v string) { c.config.SmallImageDesc = v }

// SetLargeImageEnabled changes the large image toggle and saves it.
func (c *PresenceController) SetLargeImageEnabled(ctx context.Context, enabled bool) error {
	c.config.LargeImageEnabled = enabled
	return c.saveToggle(ctx, store.KeyLargeImageEnabled, enabled)
}

// SetSmallImageEnabled changes the small image toggle and saves it.
func (c *PresenceController) SetSmallImageEnabled(ctx context.Context, enabled bool) error {
	c.config.SmallImageEnabled = enabled
	return c.saveToggle(ctx, store.KeySmallImageEnabled, enabled)
}

// SetTimerEnabled changes the timer toggle and saves it.
func (c *PresenceController) SetTimerEnabled(ctx context.Context, enabled bool) error {
	c.config.TimerEnabled = enabled
	return c.saveToggle(ctx, store.KeyTimerEnabled, enabled)
}

func (c *PresenceController) saveToggle(ctx context.Context, key string, enabled bool) error {
	if err := c.store.SetInt(ctx, key, store.BoolToInt(enabled)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Assets returns the image pairs whose toggles are on.
func (c *PresenceController) Assets() models.Assets {
	var assets models.Assets
	if c.config.LargeImageEnabled {
		assets.LargeImage = c.config.LargeImageKey
		assets.LargeText = c.config.LargeImageDesc
	}
	if c.config.SmallImageEnabled {
		assets.SmallImage = c.config.SmallImageKey
		assets.SmallText = c.config.SmallImageDesc
	}
	return assets
}

// Activity builds the payload the next update would send. With the timer on,
// the start timestamp is the current time.
func (c *PresenceController) Activity() models.Activity {
	activity := models.Activity{
		State:   c.config.Status,
		Details: c.config.Details,
		Assets:  c.Assets(),
	}
	if c.config.TimerEnabled {
		activity.Timestamps = &models.Timestamps{Start: c.clock.Now().Unix()}
	}
	return activity
}

// Activate starts a presence, or sends an update when one is running.
//
// An empty application id is ignored. A non-numeric one fails with
// [ErrInvalidConfiguration] before anything is written. Settings are saved
// before the publisher is touched, so a store failure leaves the controller
// unchanged. Publisher results are only reported to the observer.
func (c *PresenceController) Activate(ctx context.Context) error {
	if c.closed {
		return ErrControllerClosed
	}
	if c.config.AppID == "" {
		c.logger.Debug().Msg("activation ignored: empty app id")
		return nil
	}

	if c.session != nil {
		if err := c.saveActivityFields(ctx); err != nil {
			return err
		}
		c.sendUpdate(c.session)
		c.setButton(c.buttons.Update)
		return nil
	}

	appID, err := ParseAppID(c.config.AppID)
	if err != nil {
		return err
	}

	if err = c.saveIdentityFields(ctx); err != nil {
		return err
	}
	if err = c.saveActivityFields(ctx); err != nil {
		return err
	}

	conn, err := c.publisher.Open(appID)
	if err != nil {
		c.logger.Err(err).Int64("app_id", appID).Msg("error opening presence connection")
		return fmt.Errorf("open presence connection: %w", err)
	}

	id := newSessionID()
	session := &presenceSession{
		conn:        conn,
		id:          id,
		activatedAt: c.clock.Now(),
		logger:      c.logger.WithSession(id),
	}
	c.session = session
	metrics.PresenceActivationsTotal.Inc()
	metrics.PresenceActive.Set(1)

	conn.ClearActivity(c.resultHandler(models.CallbackClear))
	c.sendUpdate(session)
	c.setButton(c.buttons.Update)

	session.logger.Info().Int64("app_id", appID).Msg("presence started")
	return nil
}

// Deactivate clears the activity and closes the connection. It is a no-op
// while Inactive.
func (c *PresenceController) Deactivate(ctx context.Context) error {
	session := c.session
	if session == nil {
		return nil
	}
	c.session = nil
	metrics.PresenceActive.Set(0)

	session.conn.ClearActivity(c.resultHandler(models.CallbackClear))
	if err := session.conn.Close(); err != nil {
		session.logger.Err(err).Msg("error closing presence connection")
	}
	c.setButton(c.buttons.Start)

	session.logger.Info().Msg("presence stopped")
	return nil
}

// Close tears the controller down: the view is detached first, then any
// running presence is stopped. Activate fails afterwards.
func (c *PresenceController) Close(ctx context.Context) error {
	c.view = nil
	c.closed = true
	return c.Deactivate(ctx)
}

// Poll delivers pending publisher results. It never blocks.
func (c *PresenceController) Poll() {
	if c.session != nil {
		c.session.conn.RunCallbacks()
	}
}

func (c *PresenceController) saveIdentityFields(ctx context.Context) error {
	return c.saveStrings(ctx,
		setting{store.KeyAppID, c.config.AppID},
		setting{store.KeyLargeImageDesc, c.config.LargeImageDesc},
		setting{store.KeySmallImageDesc, c.config.SmallImageDesc},
	)
}

// saveActivityFields stores the configured image keys rather than the sent
// assets, so that switching a toggle off does not erase its key.
func (c *PresenceController) saveActivityFields(ctx context.Context) error {
	return c.saveStrings(ctx,
		setting{store.KeyStatus, c.config.Status},
		setting{store.KeyDetails, c.config.Details},
		setting{store.KeyLargeImage, c.config.LargeImageKey},
		setting{store.KeySmallImage, c.config.SmallImageKey},
	)
}

type setting struct {
	key, value string
}

func (c *PresenceController) saveStrings(ctx context.Context, settings ...setting) error {
	for _, s := range settings {
		if err := c.store.SetString(ctx, s.key, s.value); err != nil {
			return fmt.Errorf("save %s: %w", s.key, err)
		}
	}
	return nil
}

func (c *PresenceController) sendUpdate(session *presenceSession) {
	activity := c.Activity()
	session.conn.UpdateActivity(activity, c.resultHandler(models.CallbackStatus))
	session.logger.Debug().
		Str("state", activity.State).
		Str("details", activity.Details).
		Bool("timer", activity.Timestamps != nil).
		Msg("activity update sent")
}

func (c *PresenceController) resultHandler(kind models.CallbackKind) adapter.ResultCallback {
	return func(result models.Result) {
		r := models.CallbackResult{Kind: kind, Result: result, At: c.clock.Now()}
		c.lastResult = &r
		c.observer.Observe(r)
	}
}

func (c *PresenceController) setButton(presentation models.ButtonPresentation) {
	c.button = presentation
	if c.view == nil {
		return
	}
	c.view.SetButton(presentation)
}

// ParseAppID validates a Discord application id: a positive decimal integer
// made of digits only.
func ParseAppID(raw string) (int64, error) {
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: app id %q must contain digits only", ErrInvalidConfiguration, raw)
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: app id %q: %w", ErrInvalidConfiguration, raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: app id must be positive", ErrInvalidConfiguration)
	}
	return id, nil
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
