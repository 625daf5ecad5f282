// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Setting keys of the presence configuration.
const (
	KeyAppID             = "AppKey"
	KeyStatus            = "StatusKey"
	KeyDetails           = "DetailsKey"
	KeyLargeImage        = "LargeImageKey"
	KeyLargeImageDesc    = "LargeImageDescKey"
	KeyLargeImageEnabled = "LargeImageEnableKey"
	KeySmallImage        = "SmallImageKey"
	KeySmallImageDesc    = "SmallImageDescKey"
	KeySmallImageEnabled = "SmallImageEnableKey"
	KeyTimerEnabled      = "TimerEnableKey"
)

// BoolToInt encodes a flag the way it is persisted.
func BoolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// IntToBool decodes a persisted flag; any non-zero value is true.
func IntToBool(v int) bool {
	return v != 0
}
