// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	toggle    key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	start     key.Binding
	stop      key.Binding
	copy      key.Binding
	copyAny   key.Binding
	buildInfo key.Binding
}

// copy is only honoured outside text fields; copyAny works everywhere.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	toggle:    key.NewBinding(key.WithKeys(" ", "space")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	start:     key.NewBinding(key.WithKeys("ctrl+s")),
	stop:      key.NewBinding(key.WithKeys("ctrl+x")),
	copy:      key.NewBinding(key.WithKeys("y")),
	copyAny:   key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
}
