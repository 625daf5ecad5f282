// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/models"
)

const statusTTL = 2 * time.Second

var writeClipboard = clipboard.WriteAll

type panelModel struct {
	ctx          context.Context
	controller   *service.PresenceController
	button       *buttonView
	buildInfo    models.AppBuildInfo
	pollInterval time.Duration
	logger       *logger.Logger

	inputs []textinput.Model
	focus  int

	status        string
	statusIsError bool
	showBuildInfo bool
	closed        bool
}

func newPanelModel(ctx context.Context, controller *service.PresenceController, pollInterval time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) panelModel {
	button := &buttonView{}
	controller.AttachView(button)

	return panelModel{
		ctx:          ctx,
		controller:   controller,
		button:       button,
		buildInfo:    buildInfo,
		pollInterval: pollInterval,
		logger:       logger,
		inputs:       newInputs(controller.Config()),
	}
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdPoll())
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollTickMsg:
		if m.closed {
			return m, nil
		}
		m.controller.Poll()
		return m, m.cmdPoll()
	case copiedMsg:
		m.setStatus("Activity copied to clipboard")
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.setError(msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status, m.statusIsError = "", false
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m panelModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m.quit()
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab, keys.down):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab, keys.up):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.start):
		return m.activate()
	case key.Matches(msg, keys.stop):
		return m.deactivate()
	case key.Matches(msg, keys.copyAny):
		return m, m.cmdCopyActivity()
	}

	if m.focusOnInput() {
		if key.Matches(msg, keys.enter) {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyActivity()
	case key.Matches(msg, keys.enter, keys.toggle):
		switch {
		case m.focus == focusStart:
			return m.activate()
		case m.focus == focusStop:
			return m.deactivate()
		default:
			return m.flipToggle(m.focus - firstToggle)
		}
	}

	return m, nil
}

// updateFocusedInput forwards msg to the focused text field and copies the
// new value into the controller.
func (m panelModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.focusOnInput() {
		return m, nil
	}

	field := textFields[m.focus]
	if keyMsg, ok := msg.(tea.KeyMsg); ok && field.digitsOnly &&
		keyMsg.Type == tea.KeyRunes && !isDigits(keyMsg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	field.set(m.controller, m.inputs[m.focus].Value())
	return m, cmd
}

func (m panelModel) activate() (tea.Model, tea.Cmd) {
	if err := m.controller.Activate(m.ctx); err != nil {
		m.logger.Err(err).Msg("error starting presence")
		m.setError(err)
		return m, cmdClearStatus()
	}
	if m.controller.IsActive() {
		m.setStatus("Presence sent")
	} else {
		m.setStatus("Enter an App ID to start")
	}
	return m, cmdClearStatus()
}

func (m panelModel) deactivate() (tea.Model, tea.Cmd) {
	if !m.controller.IsActive() {
		return m, nil
	}
	if err := m.controller.Deactivate(m.ctx); err != nil {
		m.logger.Err(err).Msg("error stopping presence")
		m.setError(err)
		return m, cmdClearStatus()
	}
	m.setStatus("Presence stopped")
	return m, cmdClearStatus()
}

func (m panelModel) flipToggle(idx int) (tea.Model, tea.Cmd) {
	field := toggleFields[idx]
	enabled := !field.value(m.controller.Config())

	if err := field.set(m.controller, m.ctx, enabled); err != nil {
		m.logger.Err(err).Str("toggle", field.label).Msg("error saving toggle")
		m.setError(err)
		return m, cmdClearStatus()
	}
	return m, nil
}

func (m panelModel) quit() (tea.Model, tea.Cmd) {
	if err := m.controller.Close(m.ctx); err != nil {
		m.logger.Err(err).Msg("error closing presence controller")
	}
	m.closed = true
	return m, tea.Quit
}

func (m *panelModel) setFocus(focus int) {
	if m.focusOnInput() {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focusOnInput() {
		m.inputs[m.focus].Focus()
	}
}

func (m panelModel) focusOnInput() bool {
	return m.focus < len(m.inputs)
}

func (m *panelModel) setStatus(status string) {
	m.status, m.statusIsError = status, false
}

func (m *panelModel) setError(err error) {
	m.status, m.statusIsError = humanizeError(err), true
}

func (m panelModel) cmdPoll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// cmdCopyActivity captures the payload on the caller's goroutine; only the
// clipboard write runs in the command.
func (m panelModel) cmdCopyActivity() tea.Cmd {
	payload, err := json.MarshalIndent(m.controller.Activity(), "", "  ")
	if err != nil {
		return func() tea.Msg { return copyFailedMsg{err: fmt.Errorf("marshal activity: %w", err)} }
	}

	text := string(payload)
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
