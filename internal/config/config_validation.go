// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] for values that no view can
// repair with a default.
func (cfg *StructuredConfig) validate() error {
	if cfg.Presence.PollInterval < 0 {
		return fmt.Errorf("%w: poll interval must not be negative", ErrInvalidPresenceConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (p PresenceSettings) validate() error {
	if p.PollInterval <= 0 {
		return ErrInvalidPresenceConfigs
	}
	if p.Buttons.Start.Label == "" || p.Buttons.Update.Label == "" {
		return ErrInvalidPresenceConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return cfg.Presence.validate()
}

func (cfg *DaemonConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return cfg.Presence.validate()
}

func (cfg *ControlConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
