// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidConfiguration is returned when the application id is not a
	// positive decimal integer. Nothing is persisted and no connection is
	// opened.
	ErrInvalidConfiguration = errors.New("invalid presence configuration")

	// ErrControllerClosed is returned by Activate after Close.
	ErrControllerClosed = errors.New("presence controller is closed")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when no
	// build version was linked into the binary.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
