// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PresenceConfig is the user-editable rich presence configuration.
//
// It is loaded once from the settings store at startup and kept in memory
// for the lifetime of the process. Text fields are written back when a
// presence is started or updated, toggles are written back as soon as they
// change.
type PresenceConfig struct {
	// AppID is the Discord application id. It must be a decimal integer
	// for a presence to be started.
	AppID string `json:"app_id"`

	// Status is shown as the activity "state" line.
	Status string `json:"status"`
	// Details is shown as the activity "details" line.
	Details string `json:"details"`

	LargeImageKey     string `json:"large_image_key"`
	LargeImageDesc    string `json:"large_image_desc"`
	LargeImageEnabled bool   `json:"large_image_enabled"`

	SmallImageKey     string `json:"small_image_key"`
	SmallImageDesc    string `json:"small_image_desc"`
	SmallImageEnabled bool   `json:"small_image_enabled"`

	// TimerEnabled attaches a start timestamp to every activity update.
	TimerEnabled bool `json:"timer_enabled"`
}

// PresenceConfigPatch carries a partial [PresenceConfig] update. Nil fields
// are left untouched.
type PresenceConfigPatch struct {
	AppID             *string `json:"app_id,omitempty"`
	Status            *string `json:"status,omitempty"`
	Details           *string `json:"details,omitempty"`
	LargeImageKey     *string `json:"large_image_key,omitempty"`
	LargeImageDesc    *string `json:"large_image_desc,omitempty"`
	LargeImageEnabled *bool   `json:"large_image_enabled,omitempty"`
	SmallImageKey     *string `json:"small_image_key,omitempty"`
	SmallImageDesc    *string `json:"small_image_desc,omitempty"`
	SmallImageEnabled *bool   `json:"small_image_enabled,omitempty"`
	TimerEnabled      *bool   `json:"timer_enabled,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PresenceConfigPatch) IsEmpty() bool {
	return p.AppID == nil && p.Status == nil && p.Details == nil &&
		p.LargeImageKey == nil && p.LargeImageDesc == nil && p.LargeImageEnabled == nil &&
		p.SmallImageKey == nil && p.SmallImageDesc == nil && p.SmallImageEnabled == nil &&
		p.TimerEnabled == nil
}
