// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the presence daemon.
// Collectors are registered on the default registry and served by the
// control API at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Presence metrics
var (
	// PresenceResultsTotal counts publisher results by request kind and result.
	PresenceResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_results_total",
			Help: "Publisher results delivered by poll, by request kind and result",
		},
		[]string{"kind", "result"},
	)

	// PresenceActive is 1 while a presence session is running.
	PresenceActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "presence_active",
			Help: "1 while a presence session is running, 0 otherwise",
		},
	)

	PresenceActivationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "presence_activations_total",
			Help: "Presence sessions opened",
		},
	)
)

// Settings store metrics
var (
	SettingsWriteRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settings_write_retries_total",
			Help: "Settings writes retried after a retryable database error",
		},
	)
)

// Control API metrics
var (
	ControlRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_requests_total",
			Help: "Control API requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	ControlRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "control_request_duration_seconds",
			Help:    "Control API request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"route"},
	)

	// PumpCommandDuration covers the time a command spends running on the
	// presence pump, excluding the wait to be picked up.
	PumpCommandDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pump_command_duration_seconds",
			Help:    "Presence pump command execution time in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)
)
