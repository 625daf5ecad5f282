// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by settings stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned by getters when the key holds no value.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingValue is returned by GetInt when the stored value is
	// not an integer.
	ErrInvalidSettingValue = errors.New("invalid setting value")

	// ErrStoreUnavailable wraps database errors that indicate the backend
	// cannot currently be reached (connection loss, busy/locked database).
	ErrStoreUnavailable = errors.New("settings store unavailable")

	// ErrStoreNotMigrated wraps errors caused by a missing settings table.
	ErrStoreNotMigrated = errors.New("settings store is not migrated")

	// ErrStoreClosed is returned by every operation after Close.
	ErrStoreClosed = errors.New("settings store is closed")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT/UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
