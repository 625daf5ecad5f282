// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-rich-presence/models"
)

// Defaults applied by the per-binary views when a value is not configured.
const (
	DefaultPollInterval   = 100 * time.Millisecond
	DefaultServerAddress  = "localhost:8765"
	DefaultRequestTimeout = 5 * time.Second
	defaultDBDirName      = "go-rich-presence"
	defaultDBFileName     = "settings.db"
)

// PresenceSettings holds the controller settings shared by the panel and
// the daemon.
type PresenceSettings struct {
	// PollInterval is the callback pump cadence.
	PollInterval time.Duration
	// Buttons are the start button presentations.
	Buttons models.ButtonVariants
}

// StorageSettings holds the settings store DSN.
type StorageSettings struct {
	DSN string
}

// ClientConfig is the configuration of the terminal panel.
type ClientConfig struct {
	Presence PresenceSettings
	Storage  StorageSettings
	// LogFile is the panel log path; empty means next to the executable.
	LogFile string
}

// DaemonConfig is the configuration of the headless daemon.
type DaemonConfig struct {
	Presence PresenceSettings
	Storage  StorageSettings
	// HTTPAddress is the control API listen address.
	HTTPAddress string
	// RequestTimeout bounds a single control request.
	RequestTimeout time.Duration
}

// ControlConfig is the configuration of the control CLI.
type ControlConfig struct {
	// BaseURL is the daemon's control API base URL.
	BaseURL string
	// RequestTimeout is the per-request timeout.
	RequestTimeout time.Duration
	// Args are the positional arguments (verb and its flags).
	Args []string
}

// GetClientConfig builds and validates the terminal panel configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dsn, err := storageDSN(cfg.Storage.DB.DSN)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Presence: presenceSettings(cfg.Presence),
		Storage:  StorageSettings{DSN: dsn},
		LogFile:  cfg.Log.FilePath,
	}

	return clientCfg, clientCfg.validate()
}

// GetDaemonConfig builds and validates the daemon configuration.
func GetDaemonConfig(args []string) (*DaemonConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dsn, err := storageDSN(cfg.Storage.DB.DSN)
	if err != nil {
		return nil, err
	}

	daemonCfg := &DaemonConfig{
		Presence:       presenceSettings(cfg.Presence),
		Storage:        StorageSettings{DSN: dsn},
		HTTPAddress:    orDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
		RequestTimeout: durationOrDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
	}

	return daemonCfg, daemonCfg.validate()
}

// GetControlConfig builds and validates the control CLI configuration. The
// positional arguments left after flag parsing are returned in Args.
func GetControlConfig(args []string) (*ControlConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ctlCfg := &ControlConfig{
		BaseURL:        "http://" + orDefault(cfg.Adapter.HTTPAddress, DefaultServerAddress),
		RequestTimeout: durationOrDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		Args:           rest,
	}

	return ctlCfg, ctlCfg.validate()
}

func presenceSettings(p Presence) PresenceSettings {
	buttons := models.DefaultButtonVariants()
	if p.StartLabel != "" {
		buttons.Start.Label = p.StartLabel
	}
	if p.UpdateLabel != "" {
		buttons.Update.Label = p.UpdateLabel
	}

	return PresenceSettings{
		PollInterval: durationOrDefault(p.PollInterval, DefaultPollInterval),
		Buttons:      buttons,
	}
}

// storageDSN returns dsn, or the default SQLite file in the user config
// directory when dsn is empty.
func storageDSN(dsn string) (string, error) {
	if dsn != "" {
		return dsn, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: resolve user config dir: %w", ErrInvalidStorageConfigs, err)
	}

	return filepath.Join(dir, defaultDBDirName, defaultDBFileName), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func durationOrDefault(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
