// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package window

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Strategy and operation label values.
const (
	strategyPaged    = "paged"
	strategyInfinite = "infinite"

	operationPage  = "page"
	operationCount = "count"
	operationChunk = "chunk"
	operationAll   = "all"
)

// Metrics instruments windowing fetches. A nil *Metrics records nothing.
type Metrics struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stale    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gallery_window_fetches_total",
				Help: "Photo fetches issued by the windowing controllers",
			},
			[]string{"strategy", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gallery_window_fetch_duration_seconds",
				Help:    "Latency of photo fetches issued by the windowing controllers",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy", "operation"},
		),
		stale: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gallery_window_stale_responses_total",
				Help: "Fetch responses dropped because the controller was reset",
			},
			[]string{"strategy"},
		),
	}

	if registerer != nil {
		registerer.MustRegister(m.fetches, m.duration, m.stale)
	}
	return m
}

func (m *Metrics) observe(strategy, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.fetches.WithLabelValues(strategy, operation, outcome).Inc()
	m.duration.WithLabelValues(strategy, operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) dropStale(strategy string) {
	if m == nil {
		return
	}
	m.stale.WithLabelValues(strategy).Inc()
}
