// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive presence panel on top of
// bubbletea.
//
// The panel is a single form: seven text fields, three toggles and the
// start/update and stop buttons. The presence controller is only touched
// from the model's Update, which bubbletea runs on one goroutine, and a
// periodic tick drives the controller's Poll.
package tui
