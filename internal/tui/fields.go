// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-rich-presence/internal/service"
	"github.com/MKhiriev/go-rich-presence/models"
)

const inputWidth = 40

type textField struct {
	label       string
	placeholder string
	digitsOnly  bool
	value       func(models.PresenceConfig) string
	set         func(*service.PresenceController, string)
}

type toggleField struct {
	label string
	value func(models.PresenceConfig) bool
	set   func(*service.PresenceController, context.Context, bool) error
}

var textFields = []textField{
	{
		label:       "App ID",
		placeholder: "Discord application id",
		digitsOnly:  true,
		value:       func(c models.PresenceConfig) string { return c.AppID },
		set:         (*service.PresenceController).SetAppID,
	},
	{
		label:       "Status",
		placeholder: "state line",
		value:       func(c models.PresenceConfig) string { return c.Status },
		set:         (*service.PresenceController).SetStatus,
	},
	{
		label:       "Details",
		placeholder: "details line",
		value:       func(c models.PresenceConfig) string { return c.Details },
		set:         (*service.PresenceController).SetDetails,
	},
	{
		label:       "Large image",
		placeholder: "asset key",
		value:       func(c models.PresenceConfig) string { return c.LargeImageKey },
		set:         (*service.PresenceController).SetLargeImageKey,
	},
	{
		label:       "Large text",
		placeholder: "hover text",
		value:       func(c models.PresenceConfig) string { return c.LargeImageDesc },
		set:         (*service.PresenceController).SetLargeImageDesc,
	},
	{
		label:       "Small image",
		placeholder: "asset key",
		value:       func(c models.PresenceConfig) string { return c.SmallImageKey },
		set:         (*service.PresenceController).SetSmallImageKey,
	},
	{
		label:       "Small text",
		placeholder: "hover text",
		value:       func(c models.PresenceConfig) string { return c.SmallImageDesc },
		set:         (*service.PresenceController).SetSmallImageDesc,
	},
}

var toggleFields = []toggleField{
	{
		label: "Large image",
		value: func(c models.PresenceConfig) bool { return c.LargeImageEnabled },
		set:   (*service.PresenceController).SetLargeImageEnabled,
	},
	{
		label: "Small image",
		value: func(c models.PresenceConfig) bool { return c.SmallImageEnabled },
		set:   (*service.PresenceController).SetSmallImageEnabled,
	},
	{
		label: "Timer",
		value: func(c models.PresenceConfig) bool { return c.TimerEnabled },
		set:   (*service.PresenceController).SetTimerEnabled,
	},
}

// Focus order: text fields, toggles, start button, stop button.
var (
	firstToggle = len(textFields)
	focusStart  = firstToggle + len(toggleFields)
	focusStop   = focusStart + 1
	focusCount  = focusStop + 1
)

func newInputs(cfg models.PresenceConfig) []textinput.Model {
	inputs := make([]textinput.Model, len(textFields))
	for i, f := range textFields {
		inputs[i] = textinput.New()
		inputs[i].Width = inputWidth
		inputs[i].Placeholder = f.placeholder
		inputs[i].SetValue(f.value(cfg))
	}
	inputs[0].Focus()
	return inputs
}

func isDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
