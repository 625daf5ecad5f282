// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when a request body is not valid JSON
	// for the expected type.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrEmptyPatch is returned when a config patch changes nothing.
	ErrEmptyPatch = errors.New("patch contains no fields")
)
