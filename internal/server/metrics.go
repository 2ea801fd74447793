package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	undefined    *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickcalc",
			Name:      "calculations_total",
			Help:      "Number of calculations served, by calculator.",
		}, []string{"kind"}),
		undefined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickcalc",
			Name:      "undefined_results_total",
			Help:      "Percentage results that hit a division guard, by mode.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quickcalc",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}

	m.registry.MustRegister(
		m.calculations,
		m.undefined,
		m.duration,
		collectors.NewGoCollector(),
	)
	return m
}
