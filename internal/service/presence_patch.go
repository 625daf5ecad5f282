// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-rich-presence/models"
)

// ApplyPatch copies the set fields of patch into the configuration, the same
// way the panel's inputs would: text in memory, toggles saved right away.
// A non-numeric application id is rejected before anything changes.
func (c *PresenceController) ApplyPatch(ctx context.Context, patch models.PresenceConfigPatch) error {
	if patch.AppID != nil && *patch.AppID != "" {
		if _, err := ParseAppID(*patch.AppID); err != nil {
			return err
		}
	}

	texts := []struct {
		value *string
		set   func(string)
	}{
		{patch.AppID, c.SetAppID},
		{patch.Status, c.SetStatus},
		{patch.Details, c.SetDetails},
		{patch.LargeImageKey, c.SetLargeImageKey},
		{patch.LargeImageDesc, c.SetLargeImageDesc},
		{patch.SmallImageKey, c.SetSmallImageKey},
		{patch.SmallImageDesc, c.SetSmallImageDesc},
	}
	for _, t := range texts {
		if t.value != nil {
			t.set(*t.value)
		}
	}

	toggles := []struct {
		value *bool
		set   func(context.Context, bool) error
	}{
		{patch.LargeImageEnabled, c.SetLargeImageEnabled},
		{patch.SmallImageEnabled, c.SetSmallImageEnabled},
		{patch.TimerEnabled, c.SetTimerEnabled},
	}
	for _, t := range toggles {
		if t.value == nil {
			continue
		}
		if err := t.set(ctx, *t.value); err != nil {
			return err
		}
	}

	return nil
}
