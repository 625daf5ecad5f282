// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the daemon.
//
// RunServer blocks until a stop signal arrives or serving fails, and
// returns after every background worker has finished.
type Server interface {
	RunServer()
	Shutdown()
}
