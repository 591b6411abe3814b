// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outcomes of a layout pass, used as metric labels.
const (
	outcomeDropped   = "dropped"
	outcomeSkipped   = "skipped"
	outcomeFallback  = "fallback"
	outcomeCommitted = "committed"
)

// Metrics contains the Prometheus metrics of layout passes.
// Metrics are only recorded after [EnableMetrics] is called.
type Metrics struct {

	// Passes counts layout requests by layout type and outcome.
	Passes *prometheus.CounterVec

	// Duration has the duration of layout passes by layout type,
	// including any bubbling to parent containers.
	Duration *prometheus.HistogramVec

	// Subscriptions is the number of children that managers are listening to.
	Subscriptions prometheus.Gauge
}

// metrics are the current layout metrics, which are nil when disabled.
var metrics *Metrics

// EnableMetrics registers the layout metrics with the given registerer
// and starts recording them. It returns the new metrics.
func EnableMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	metrics = &Metrics{
		Passes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "canvas_layout_passes_total",
				Help: "Total number of layout requests, by layout type and outcome",
			},
			[]string{"type", "outcome"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "canvas_layout_pass_duration_seconds",
				Help:    "Duration of layout passes, by layout type",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"type"},
		),
		Subscriptions: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "canvas_layout_subscriptions",
				Help: "Number of children that layout managers are listening to",
			},
		),
	}
	return metrics
}

// DisableMetrics stops recording layout metrics.
func DisableMetrics() {
	metrics = nil
}

func (ms *Metrics) observePass(tp Types, outcome string, start time.Time) {
	if ms == nil {
		return
	}
	ms.Passes.WithLabelValues(tp.String(), outcome).Inc()
	if outcome != outcomeDropped {
		ms.Duration.WithLabelValues(tp.String()).Observe(time.Since(start).Seconds())
	}
}

func (ms *Metrics) addSubscriptions(n int) {
	if ms == nil {
		return
	}
	ms.Subscriptions.Add(float64(n))
}
