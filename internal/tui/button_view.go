// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-rich-presence/models"

// buttonView receives start button presentations from the controller. It
// is shared by pointer between copies of the panel model.
type buttonView struct {
	presentation models.ButtonPresentation
}

func (b *buttonView) SetButton(presentation models.ButtonPresentation) {
	b.presentation = presentation
}
