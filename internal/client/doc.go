// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the two interactive front ends.
//
// App runs the terminal presence panel: it loads the saved configuration,
// shows the panel and closes the settings store on exit. Control implements
// the presencectl verbs on top of the daemon's control API.
package client
