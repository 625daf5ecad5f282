// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rich-presence/internal/adapter"
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/internal/store"
	"github.com/MKhiriev/go-rich-presence/models"
)

type recordingConnection struct {
	updates []models.Activity
	clears  int
	closed  bool
	pending []func()
}

func (c *recordingConnection) ClearActivity(cb adapter.ResultCallback) {
	c.clears++
	c.pending = append(c.pending, func() { cb(models.ResultOk) })
}

func (c *recordingConnection) UpdateActivity(activity models.Activity, cb adapter.ResultCallback) {
	c.updates = append(c.updates, activity)
	c.pending = append(c.pending, func() { cb(models.ResultOk) })
}

func (c *recordingConnection) RunCallbacks() {
	pending := c.pending
	c.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (c *recordingConnection) Close() error {
	c.closed = true
	return nil
}

type recordingPublisher struct {
	conn   *recordingConnection
	opened []int64
}

func (p *recordingPublisher) Open(appID int64) (adapter.PresenceConnection, error) {
	p.opened = append(p.opened, appID)
	p.conn = &recordingConnection{}
	return p.conn, nil
}

type panelFixture struct {
	store     store.SettingsStore
	publisher *recordingPublisher
	model     panelModel
}

func newPanelFixture(t *testing.T, cfg models.PresenceConfig) *panelFixture {
	t.Helper()
	ctx := context.Background()

	settings := store.NewMemorySettingsStore()
	publisher := &recordingPublisher{}
	controller := service.NewPresenceController(settings, publisher, logger.Nop())
	controller.SetAppID(cfg.AppID)
	controller.SetStatus(cfg.Status)
	controller.SetDetails(cfg.Details)

	return &panelFixture{
		store:     settings,
		publisher: publisher,
		model:     newPanelModel(ctx, controller, 10*time.Millisecond, models.NewAppBuildInfo("v1.0.0", "2026-03-01", "abc123"), logger.Nop()),
	}
}

func (f *panelFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := f.model.Update(msg)
	m, ok := updated.(panelModel)
	require.True(t, ok)
	f.model = m
	return cmd
}

func (f *panelFixture) typeText(t *testing.T, text string) {
	t.Helper()
	for _, r := range text {
		f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (f *panelFixture) focus(t *testing.T, idx int) {
	t.Helper()
	for f.model.focus != idx {
		f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	}
}

func TestPanel_InputsStartWithConfig(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "42", Status: "Playing", Details: "Level 3"})

	assert.Equal(t, "42", f.model.inputs[0].Value())
	assert.Equal(t, "Playing", f.model.inputs[1].Value())
	assert.Equal(t, "Level 3", f.model.inputs[2].Value())
	assert.Equal(t, models.DefaultButtonVariants().Start, f.model.button.presentation)
}

func TestPanel_AppIDAcceptsDigitsOnly(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.typeText(t, "12a3-")

	assert.Equal(t, "123", f.model.inputs[0].Value())
	assert.Equal(t, "123", f.model.controller.Config().AppID)
}

func TestPanel_TypingUpdatesControllerOnly(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.focus(t, 1)
	f.typeText(t, "In a match")

	assert.Equal(t, "In a match", f.model.controller.Config().Status)
	ok, err := f.store.Has(context.Background(), store.KeyStatus)
	require.NoError(t, err)
	assert.False(t, ok, "text fields are saved on start, not while typing")
}

func TestPanel_StartAndUpdate(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "42", Status: "Playing"})

	f.focus(t, focusStart)
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, []int64{42}, f.publisher.opened)
	assert.True(t, f.model.controller.IsActive())
	assert.Equal(t, models.DefaultButtonVariants().Update, f.model.button.presentation)
	assert.Equal(t, "Presence sent", f.model.status)

	saved, err := f.store.GetString(context.Background(), store.KeyStatus)
	require.NoError(t, err)
	assert.Equal(t, "Playing", saved)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Len(t, f.publisher.opened, 1)
	assert.Len(t, f.publisher.conn.updates, 2)
}

func TestPanel_StartWithoutAppID(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Empty(t, f.publisher.opened)
	assert.False(t, f.model.statusIsError)
	assert.Equal(t, "Enter an App ID to start", f.model.status)
}

func TestPanel_StartWithInvalidAppID(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "0"})

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Empty(t, f.publisher.opened)
	assert.True(t, f.model.statusIsError)
	assert.Equal(t, "App ID must be a positive number", f.model.status)
}

func TestPanel_Stop(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "42"})
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	conn := f.publisher.conn

	f.focus(t, focusStop)
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, f.model.controller.IsActive())
	assert.True(t, conn.closed)
	assert.Equal(t, models.DefaultButtonVariants().Start, f.model.button.presentation)
}

func TestPanel_TogglePersists(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.focus(t, firstToggle+2)
	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.True(t, f.model.controller.Config().TimerEnabled)
	v, err := f.store.GetInt(context.Background(), store.KeyTimerEnabled)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, f.model.controller.Config().TimerEnabled)
}

func TestPanel_PollDeliversResults(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "42"})
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, f.model.controller.Status().LastResult)

	cmd := f.send(t, pollTickMsg(time.Now()))

	require.NotNil(t, cmd)
	last := f.model.controller.Status().LastResult
	require.NotNil(t, last)
	assert.Equal(t, models.CallbackStatus, last.Kind)
	assert.Contains(t, f.model.View(), "last status result: Ok")
}

func TestPanel_CopyActivity(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	f := newPanelFixture(t, models.PresenceConfig{AppID: "42", Status: "Playing", Details: "Level 3"})

	// "y" is plain text while a field is focused.
	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Empty(t, copied)

	f.focus(t, focusStart)
	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.Equal(t, copiedMsg{}, cmd())

	var activity models.Activity
	require.NoError(t, json.Unmarshal([]byte(copied), &activity))
	assert.Equal(t, "Playing", activity.State)
	assert.Equal(t, "Level 3", activity.Details)

	f.send(t, copiedMsg{})
	assert.Equal(t, "Activity copied to clipboard", f.model.status)
	f.send(t, clearStatusMsg{})
	assert.Empty(t, f.model.status)
}

func TestPanel_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	f := newPanelFixture(t, models.PresenceConfig{})

	msg := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlY})()
	failed, ok := msg.(copyFailedMsg)
	require.True(t, ok)

	f.send(t, failed)
	assert.True(t, f.model.statusIsError)
	assert.Contains(t, f.model.status, "no clipboard")
}

func TestPanel_QuitClosesController(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{AppID: "42"})
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	conn := f.publisher.conn

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, f.model.closed)
	assert.True(t, conn.closed)
	assert.ErrorIs(t, f.model.controller.Activate(context.Background()), service.ErrControllerClosed)
	assert.Nil(t, f.send(t, pollTickMsg(time.Now())))
}

func TestPanel_BuildInfoOverlay(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.send(t, tea.KeyMsg{Type: tea.KeyF1})
	view := f.model.View()
	assert.Contains(t, view, "Version: v1.0.0")
	assert.Contains(t, view, "Commit: abc123")

	f.typeText(t, "7")
	assert.Empty(t, f.model.inputs[0].Value(), "keys are swallowed while the overlay is open")

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, f.model.View(), "Version: v1.0.0")
}

func TestPanel_FocusWraps(t *testing.T) {
	f := newPanelFixture(t, models.PresenceConfig{})

	f.send(t, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusStop, f.model.focus)
	assert.False(t, f.model.inputs[0].Focused())

	f.send(t, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, f.model.focus)
	assert.True(t, f.model.inputs[0].Focused())
}

func TestNew_Validation(t *testing.T) {
	controller := service.NewPresenceController(store.NewMemorySettingsStore(), &recordingPublisher{}, logger.Nop())

	_, err := New(nil, time.Second, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoController)

	_, err = New(controller, 0, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidPollInterval)

	ui, err := New(controller, time.Second, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: fmt.Errorf("%w: bad", service.ErrInvalidConfiguration), want: "App ID must be a positive number"},
		{err: fmt.Errorf("open: %w", adapter.ErrDiscordNotRunning), want: "Discord is not running"},
		{err: adapter.ErrConnectionBusy, want: "Another presence connection is already open"},
		{err: fmt.Errorf("save: %w", store.ErrStoreUnavailable), want: "Settings storage is unavailable"},
		{err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}
