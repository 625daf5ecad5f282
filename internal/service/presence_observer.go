// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-rich-presence/internal/logger"
	"github.com/MKhiriev/go-rich-presence/internal/metrics"
	"github.com/MKhiriev/go-rich-presence/models"
)

type loggingObserver struct {
	logger *logger.Logger
}

// NewLoggingObserver returns the default [ResultObserver]: it logs each
// result by name and does nothing else.
func NewLoggingObserver(logger *logger.Logger) ResultObserver {
	return &loggingObserver{logger: logger}
}

func (o *loggingObserver) Observe(result models.CallbackResult) {
	ev := o.logger.Info()
	if result.Result != models.ResultOk {
		ev = o.logger.Warn()
	}
	ev.Str("result", result.Result.String()).Msg(string(result.Kind) + " callback")
}

// NewMetricsObserver returns a [ResultObserver] that counts results in
// [metrics.PresenceResultsTotal].
func NewMetricsObserver() ResultObserver {
	return ObserverFunc(func(result models.CallbackResult) {
		metrics.PresenceResultsTotal.WithLabelValues(string(result.Kind), result.Result.String()).Inc()
	})
}

// MultiObserver fans each result out to observers in order.
func MultiObserver(observers ...ResultObserver) ResultObserver {
	return ObserverFunc(func(result models.CallbackResult) {
		for _, o := range observers {
			o.Observe(result)
		}
	})
}

// ObserverFunc adapts a plain function to [ResultObserver].
type ObserverFunc func(result models.CallbackResult)

func (f ObserverFunc) Observe(result models.CallbackResult) {
	f(result)
}
