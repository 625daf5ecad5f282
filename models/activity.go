// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Activity is the payload sent to the presence publisher.
type Activity struct {
	State      string      `json:"state,omitempty"`
	Details    string      `json:"details,omitempty"`
	Assets     Assets      `json:"assets"`
	Timestamps *Timestamps `json:"timestamps,omitempty"`
}

// Assets holds the image keys and hover texts of an activity. A disabled
// image pair is left empty and therefore omitted from the payload.
type Assets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

// HasLarge reports whether the large image pair is present.
func (a Assets) HasLarge() bool {
	return a.LargeImage != "" || a.LargeText != ""
}

// HasSmall reports whether the small image pair is present.
func (a Assets) HasSmall() bool {
	return a.SmallImage != "" || a.SmallText != ""
}

// Timestamps marks the start of the elapsed-time counter, in unix seconds.
type Timestamps struct {
	Start int64 `json:"start"`
}
