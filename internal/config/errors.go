// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidPresenceConfigs indicates invalid presence settings
	// (for example, a negative poll interval or an empty button label).
	ErrInvalidPresenceConfigs = errors.New("invalid presence configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unresolvable default DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid control API settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid control client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
