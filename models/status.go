// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PresenceState is the lifecycle state of the presence controller.
type PresenceState string

const (
	PresenceInactive PresenceState = "inactive"
	PresenceActive   PresenceState = "active"
)

// ButtonPresentation describes how the start button is rendered.
type ButtonPresentation struct {
	Label  string `json:"label"`
	Filled bool   `json:"filled"`
}

// ButtonVariants holds the two presentations the start button switches
// between: Start while no presence is running, Update while one is.
type ButtonVariants struct {
	Start  ButtonPresentation `json:"start"`
	Update ButtonPresentation `json:"update"`
}

// DefaultButtonVariants returns the built-in button labels.
func DefaultButtonVariants() ButtonVariants {
	return ButtonVariants{
		Start:  ButtonPresentation{Label: "Start presence", Filled: false},
		Update: ButtonPresentation{Label: "Update presence", Filled: true},
	}
}

// CallbackKind names the publisher request a result belongs to.
type CallbackKind string

const (
	CallbackClear  CallbackKind = "clear"
	CallbackStatus CallbackKind = "status"
)

// CallbackResult is a publisher result together with the request it
// answers.
type CallbackResult struct {
	Kind   CallbackKind `json:"kind"`
	Result Result       `json:"result"`
	At     time.Time    `json:"at"`
}

// PresenceStatus is a read-only snapshot of the controller.
type PresenceStatus struct {
	State       PresenceState      `json:"state"`
	Button      ButtonPresentation `json:"button"`
	Config      PresenceConfig     `json:"config"`
	SessionID   string             `json:"session_id,omitempty"`
	ActivatedAt *time.Time         `json:"activated_at,omitempty"`
	LastResult  *CallbackResult    `json:"last_result,omitempty"`
}
