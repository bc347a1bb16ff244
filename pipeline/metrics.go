// SPDX-License-Identifier: MIT
// Package: lvtopo/pipeline
//
// metrics.go — Prometheus instrumentation for the runner.

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the runner's collectors.
type Metrics struct {
	UnitsTotal   *prometheus.CounterVec
	UnitDuration prometheus.Histogram
	UnitsActive  prometheus.Gauge
	Simplices    prometheus.Histogram
	Distances    prometheus.Counter
}

// NewMetrics registers the runner collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		UnitsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvtopo_units_total",
				Help: "Analysis units processed, by outcome",
			},
			[]string{"outcome"},
		),
		UnitDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtopo_unit_duration_seconds",
				Help:    "Wall time of one analysis unit",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
		UnitsActive: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "lvtopo_units_active",
				Help: "Analysis units currently running",
			},
		),
		Simplices: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvtopo_complex_simplices",
				Help:    "Simplices per Vietoris-Rips complex",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		Distances: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "lvtopo_bottleneck_distances_total",
				Help: "Weighted bottleneck distances computed",
			},
		),
	}
}

func (m *Metrics) observeUnit(rep Report) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !rep.OK() {
		outcome = "failed"
	}
	m.UnitsTotal.WithLabelValues(outcome).Inc()
	m.UnitDuration.Observe(rep.Elapsed.Seconds())
	if rep.Built {
		m.Simplices.Observe(float64(rep.Simplices))
	}
}

func (m *Metrics) active(delta float64) {
	if m != nil {
		m.UnitsActive.Add(delta)
	}
}

func (m *Metrics) distances(n int) {
	if m != nil {
		m.Distances.Add(float64(n))
	}
}
