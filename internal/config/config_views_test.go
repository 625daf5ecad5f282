// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-rich-presence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultPollInterval, cfg.Presence.PollInterval)
	assert.Equal(t, models.DefaultButtonVariants(), cfg.Presence.Buttons)
	assert.Contains(t, cfg.Storage.DSN, defaultDBFileName)
	assert.Empty(t, cfg.LogFile)
}

func TestGetClientConfig_CustomLabels(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-d", ":memory:", "-start-label", "Go", "-update-label", "Again"})

	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, "Go", cfg.Presence.Buttons.Start.Label)
	assert.False(t, cfg.Presence.Buttons.Start.Filled)
	assert.Equal(t, "Again", cfg.Presence.Buttons.Update.Label)
	assert.True(t, cfg.Presence.Buttons.Update.Filled)
}

func TestGetDaemonConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetDaemonConfig([]string{"-d", "settings.db"})

	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "settings.db", cfg.Storage.DSN)
}

func TestGetDaemonConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":          "127.0.0.1:9999",
		"SERVER_REQUEST_TIMEOUT":  "1s",
		"PRESENCE_POLL_INTERVAL":  "16ms",
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/presence",
	})

	cfg, err := GetDaemonConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTPAddress)
	assert.Equal(t, time.Second, cfg.RequestTimeout)
	assert.Equal(t, 16*time.Millisecond, cfg.Presence.PollInterval)
	assert.Equal(t, "postgres://localhost/presence", cfg.Storage.DSN)
}

func TestGetControlConfig_ArgsAndBaseURL(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetControlConfig([]string{"-remote", "127.0.0.1:9000", "set", "-status", "Playing"})

	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, []string{"set", "-status", "Playing"}, cfg.Args)
}

func TestGetDaemonConfig_NegativeTimeout(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "-1s"})

	_, err := GetDaemonConfig([]string{"-d", "x.db"})

	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestPresenceSettings_Validate(t *testing.T) {
	valid := PresenceSettings{PollInterval: time.Millisecond, Buttons: models.DefaultButtonVariants()}
	assert.NoError(t, valid.validate())

	noLabel := valid
	noLabel.Buttons.Update.Label = ""
	assert.ErrorIs(t, noLabel.validate(), ErrInvalidPresenceConfigs)

	noInterval := valid
	noInterval.PollInterval = 0
	assert.ErrorIs(t, noInterval.validate(), ErrInvalidPresenceConfigs)
}
