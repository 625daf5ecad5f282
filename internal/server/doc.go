// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the daemon: the HTTP control API together with the
// background workers that own the presence controller.
//
// It handles startup, signal handling and graceful shutdown. On SIGINT,
// SIGTERM or SIGQUIT the HTTP server stops accepting requests first, then
// the workers are cancelled and awaited so the presence is cleared before
// the process exits.
package server
