// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Route("/api/presence", func(r chi.Router) {
		r.Get("/", h.getPresence)
		r.Patch("/config", h.patchPresenceConfig)
		r.Post("/start", h.startPresence)
		r.Post("/stop", h.stopPresence)
	})
	router.Get("/api/version/", h.getVersion)
	router.Handle("/metrics", promhttp.Handler())

	return router
}
