// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds the small HTTP helpers shared by the control API and
// the control client: JSON response writing and a preconfigured resty
// client.
package utils
