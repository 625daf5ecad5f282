// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsStore is a string-keyed persistent key/value store. Booleans are
// kept as integers (0/1) by the callers.
type SettingsStore interface {
	// Has reports whether key holds a value.
	Has(ctx context.Context, key string) (bool, error)
	// GetString returns the value of key or [ErrSettingNotFound].
	GetString(ctx context.Context, key string) (string, error)
	// SetString stores value under key, replacing any previous value.
	SetString(ctx context.Context, key, value string) error
	// GetInt returns the integer value of key, [ErrSettingNotFound] or
	// [ErrInvalidSettingValue].
	GetInt(ctx context.Context, key string) (int, error)
	// SetInt stores value under key, replacing any previous value.
	SetInt(ctx context.Context, key string, value int) error
	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
