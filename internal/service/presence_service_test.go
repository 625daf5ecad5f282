// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/metrics"
	"github.com/MKhiriev/go-rich-presence/internal/mock"
	"github.com/MKhiriev/go-rich-presence/models"
)

// inlineDispatcher runs commands on the calling goroutine.
type inlineDispatcher struct {
	c     *PresenceController
	err   error
	calls int
}

func (d *inlineDispatcher) Do(_ context.Context, fn func(c *PresenceController) error) error {
	d.calls++
	if d.err != nil {
		return d.err
	}
	return fn(d.c)
}

func TestPresenceService_Status(t *testing.T) {
	f := newFixture(t, nil)
	f.fill(models.PresenceConfig{Status: "Playing"})
	d := &inlineDispatcher{c: f.c}

	status, err := NewPresenceService(d, logger.Nop()).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.PresenceInactive, status.State)
	assert.Equal(t, "Playing", status.Config.Status)
	assert.Equal(t, 1, d.calls)
}

func TestPresenceService_ApplyPatch(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewPresenceService(&inlineDispatcher{c: f.c}, logger.Nop())

	status := "Ranked"
	timer := true
	got, err := svc.ApplyPatch(context.Background(), models.PresenceConfigPatch{Status: &status, TimerEnabled: &timer})
	require.NoError(t, err)
	assert.Equal(t, "Ranked", got.Config.Status)
	assert.True(t, got.Config.TimerEnabled)
}

func TestPresenceService_StartStop(t *testing.T) {
	f := newFixture(t, nil)
	f.fill(models.PresenceConfig{AppID: "42"})
	svc := NewPresenceService(&inlineDispatcher{c: f.c}, logger.Nop())

	f.expectOpen(42)
	f.conn.EXPECT().ClearActivity(gomock.Any()).Times(2)
	f.conn.EXPECT().UpdateActivity(gomock.Any(), gomock.Any())
	f.conn.EXPECT().Close().Return(nil)

	ctx := context.Background()
	got, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PresenceActive, got.State)
	assert.NotEmpty(t, got.SessionID)

	got, err = svc.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PresenceInactive, got.State)
}

func TestPresenceService_StartInvalid(t *testing.T) {
	f := newFixture(t, nil)
	f.fill(models.PresenceConfig{AppID: "abc"})

	_, err := NewPresenceService(&inlineDispatcher{c: f.c}, logger.Nop()).Start(context.Background())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPresenceService_DispatcherError(t *testing.T) {
	stopped := errors.New("pump stopped")
	svc := NewPresenceService(&inlineDispatcher{err: stopped}, logger.Nop())

	_, err := svc.Status(context.Background())
	assert.ErrorIs(t, err, stopped)
}

// ── ApplyPatch ───────────────────────────────────────────────────────────────

func TestApplyPatch_RejectsNonNumericAppID(t *testing.T) {
	f := newFixture(t, nil)
	f.fill(models.PresenceConfig{AppID: "42", Status: "keep"})

	appID := "4x2"
	status := "changed"
	err := f.c.ApplyPatch(context.Background(), models.PresenceConfigPatch{AppID: &appID, Status: &status})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "42", f.c.Config().AppID)
	assert.Equal(t, "keep", f.c.Config().Status)
}

func TestApplyPatch_AllFields(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	s := func(v string) *string { return &v }
	b := func(v bool) *bool { return &v }
	patch := models.PresenceConfigPatch{
		AppID:             s(""),
		Status:            s("st"),
		Details:           s("de"),
		LargeImageKey:     s("lk"),
		LargeImageDesc:    s("ld"),
		LargeImageEnabled: b(true),
		SmallImageKey:     s("sk"),
		SmallImageDesc:    s("sd"),
		SmallImageEnabled: b(false),
		TimerEnabled:      b(true),
	}
	require.NoError(t, f.c.ApplyPatch(ctx, patch))

	assert.Equal(t, models.PresenceConfig{
		Status: "st", Details: "de",
		LargeImageKey: "lk", LargeImageDesc: "ld", LargeImageEnabled: true,
		SmallImageKey: "sk", SmallImageDesc: "sd",
		TimerEnabled: true,
	}, f.c.Config())

	v, err := f.store.GetInt(ctx, "SmallImageEnableKey")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	has, err := f.store.Has(ctx, "StatusKey")
	require.NoError(t, err)
	assert.False(t, has, "text fields are saved on activation only")
}

// ── observer / app info ──────────────────────────────────────────────────────

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	obs := NewLoggingObserver(log)
	obs.Observe(models.CallbackResult{Kind: models.CallbackClear, Result: models.ResultOk})
	obs.Observe(models.CallbackResult{Kind: models.CallbackStatus, Result: models.ResultNotRunning})

	out := buf.String()
	assert.Contains(t, out, `"message":"clear callback"`)
	assert.Contains(t, out, `"result":"Ok"`)
	assert.Contains(t, out, `"message":"status callback"`)
	assert.Contains(t, out, `"result":"NotRunning"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestMultiObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock.NewMockResultObserver(ctrl)
	second := mock.NewMockResultObserver(ctrl)
	result := models.CallbackResult{Kind: models.CallbackStatus, Result: models.ResultInvalidPayload}

	gomock.InOrder(
		first.EXPECT().Observe(result),
		second.EXPECT().Observe(result),
	)

	MultiObserver(first, second).Observe(result)
}

func TestMetricsObserver(t *testing.T) {
	counter := metrics.PresenceResultsTotal.WithLabelValues("clear", "NotRunning")
	before := testutil.ToFloat64(counter)

	NewMetricsObserver().Observe(models.CallbackResult{Kind: models.CallbackClear, Result: models.ResultNotRunning})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "", "abc"), logger.Nop())
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())

	_, err = NewAppInfoService(models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(&inlineDispatcher{}, models.NewAppBuildInfo("1", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.PresenceService)
	assert.NotNil(t, services.AppInfoService)
}
