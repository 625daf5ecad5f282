// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the control API of the presence daemon.
//
// It exposes route wiring, request handlers, and middleware. Request tracing
// and access logging are handled here before requests are delegated to the
// service layer, which runs them on the presence pump.
package http
